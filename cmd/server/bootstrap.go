package main

import (
	"errors"

	"verisbt/internal/platform/config"
	"verisbt/internal/query/builder"
	querymodels "verisbt/internal/query/models"
)

var errMissingBootstrap = errors.New("VSBT_BOOTSTRAP_FILE is required outside dev")

// devBootstrap accepts any proof: every default query is bound to a mock
// validator that reports the identity at public input 6.
func devBootstrap() *config.Bootstrap {
	return &config.Bootstrap{
		Validators: []config.ValidatorConfig{
			{Ref: "mock", Kind: config.ValidatorKindMock, CircuitID: builder.CircuitMTPV2OnChain},
		},
		DefaultQueries: []config.QueryConfig{
			{
				Name:      querymodels.OrganizationAdminQuery,
				Metadata:  "Organization admin schema query",
				Payload:   []byte{0x00},
				Validator: "mock",
				IsStatic:  true,
			},
		},
	}
}
