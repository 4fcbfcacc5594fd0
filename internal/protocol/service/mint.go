package service

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"verisbt/internal/events"
	"verisbt/internal/platform/tracer"
	"verisbt/internal/protocol/models"
	querymodels "verisbt/internal/query/models"
	"verisbt/internal/token"
	dErrors "verisbt/pkg/domain-errors"
)

type plannedMint struct {
	token common.Address
	query string
}

// MintVerifiedSBT mints one token per item to caller. Every item is checked
// before the first mint, so a failing item leaves no token behind. A caller
// holds at most one token per contract, including across items of one batch.
func (s *Service) MintVerifiedSBT(ctx context.Context, caller common.Address, items []models.MintItem) (_ []models.Minted, err error) {
	ctx, span := s.tracer.Start(ctx, tracer.SpanMint, tracer.Int(tracer.AttrItems, len(items)))
	defer func() { span.End(err) }()

	if len(items) == 0 {
		err = &models.EmptyMintBatchError{}
		s.recordRejection("mint", err)
		return nil, err
	}
	start := time.Now()

	var minted []models.Minted
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		plan := make([]plannedMint, 0, len(items))
		seen := make(map[common.Address]struct{}, len(items))
		for i, item := range items {
			b, err := s.checkMintItem(txCtx, caller, item)
			if err != nil {
				return fmt.Errorf("mint item %d: %w", i, err)
			}
			if _, dup := seen[b.Token]; dup {
				return fmt.Errorf("mint item %d: %w", i, &models.UserAlreadyHasTokenError{Holder: caller, Token: b.Token})
			}
			seen[b.Token] = struct{}{}
			plan = append(plan, plannedMint{token: b.Token, query: item.Request.QueryName})
		}

		minted = make([]models.Minted, 0, len(plan))
		for _, p := range plan {
			tokenID, err := s.tokens.Mint(txCtx, p.token, s.address, caller)
			if err != nil {
				var held *token.AlreadyHeldError
				if errors.As(err, &held) {
					return &models.UserAlreadyHasTokenError{Holder: caller, Token: p.token}
				}
				return err
			}
			minted = append(minted, models.Minted{Token: p.token, TokenID: tokenID, QueryName: p.query})
		}
		return nil
	})
	if s.metrics != nil {
		s.metrics.ObserveMint(start, len(items))
	}
	if err != nil {
		s.recordRejection("mint", err)
		return nil, err
	}

	for _, m := range minted {
		if s.metrics != nil {
			s.metrics.IncrementMinted(m.QueryName)
		}
		s.emitter.emit(ctx, events.VerifiedSBTMinted,
			"holder", caller.Hex(),
			"token", m.Token.Hex(),
			"token_id", m.TokenID,
			"query_name", m.QueryName,
		)
	}
	return minted, nil
}

// checkMintItem verifies one item and returns the binding it mints from.
func (s *Service) checkMintItem(ctx context.Context, caller common.Address, item models.MintItem) (*models.Binding, error) {
	req := item.Request
	q, err := s.lookupQuery(ctx, req.OrganizationID, req.QueryName)
	if err != nil {
		return nil, err
	}
	payload, err := s.mintPayload(ctx, q, item.ClaimFieldValue)
	if err != nil {
		return nil, err
	}
	if err := s.verify(ctx, req, q, payload); err != nil {
		return nil, err
	}
	b, err := s.requireBinding(ctx, req, q)
	if err != nil {
		return nil, err
	}
	balance, err := s.tokens.BalanceOf(ctx, b.Token, caller)
	if err != nil {
		return nil, err
	}
	if balance > 0 {
		return nil, &models.UserAlreadyHasTokenError{Holder: caller, Token: b.Token}
	}
	return b, nil
}

// mintPayload embeds the claimed value into non-static queries so the proof
// is checked against a commitment to that value.
func (s *Service) mintPayload(ctx context.Context, q *querymodels.Query, claimFieldValue *big.Int) ([]byte, error) {
	if q.IsStatic {
		return q.Payload, nil
	}
	circuitID, err := s.queries.GetQueryCircuitID(q)
	if err != nil {
		return nil, err
	}
	value := claimFieldValue
	if value == nil {
		value = new(big.Int)
	}
	payload, err := s.queries.GetDynamicQueryData(ctx, circuitID, []*big.Int{value}, q.Payload)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeValidation, "failed to embed claim field value")
	}
	return payload, nil
}
