// Package gatewayclient provides the primary entry point for constructing a
// Pagarme payment gateway client that implements the pagarme.Client
// interface.
//
// It layers configuration, credentials, and the retrying HTTP transport on
// top of the resource interfaces and types defined in the pagarme package.
// Most applications should import gatewayclient to build a client, then use
// the returned pagarme.Client to access resource-specific clients, for
// example Plans(), Subscriptions(), Orders(), etc.
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/Quantum-Tecnology/Pagarme-SDK/pkg/gatewayclient"
//	  "github.com/Quantum-Tecnology/Pagarme-SDK/pkg/pagarme"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  // With an account secret key (sent as Basic authorization):
//	  cli, err := gatewayclient.New(&pagarme.Config{
//	    BaseURL:   "https://api.pagar.me",
//	    SecretKey: "sk_test_...",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  // Or with a pre-issued access token (sent as Bearer):
//	  cli, err = gatewayclient.New(&pagarme.Config{
//	    BaseURL:     "https://api.pagar.me",
//	    AccessToken: "eyJhbGciOi...",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  // Use resource clients via the pagarme.Client interface. Every
//	  // operation reports its outcome through the result envelope.
//	  result := cli.Plans().List(ctx, &pagarme.PlanListOptions{Size: 25})
//	  if result.Failed() { log.Fatal(result.Message) }
//	}
//
// # Helpers
//
// The package also provides convenience constructors NewWithSecretKey and
// NewWithAccessToken that wrap New with the appropriate configuration.
package gatewayclient
