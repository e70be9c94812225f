// Package pagarme provides types, interfaces, and helpers for working with the
// Pagarme payment gateway API.
//
// # Overview
//
// The pagarme package defines the domain types (e.g., CustomerCreateRequest,
// PlanCreateRequest, SubscriptionCreateRequest, OrderBuilder) and the
// interfaces for resource-oriented clients (CardsClient, CustomersClient,
// OrdersClient, PlansClient, SubscriptionsClient). A concrete implementation
// of these clients is provided by the gatewayclient package, which wires
// configuration, transport, and credentials. Most consumers should import
// gatewayclient to construct a client and then interact with the resource
// client interfaces exposed here.
//
// Getting a client
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
//	  cli, err := gatewayclient.NewWithSecretKey("https://api.pagar.me", "sk_test_123")
//	  if err != nil { log.Fatal(err) }
//
//	  result := cli.Plans().List(ctx, &pagarme.PlanListOptions{Size: 50})
//	  _ = result
//	}
//
// # Results
//
// Every operation returns an Envelope describing one of four outcomes:
// local validation failure (no network call issued), transport failure after
// retry exhaustion, an application error returned by the gateway, or success.
// Expected-invalid input never surfaces as a Go error; it lands in the
// envelope's FieldErrors.
//
// # Response data
//
// Response payloads are exposed as Value, an ordered JSON value model that
// preserves object key order at every nesting depth and supports uniform
// traversal over objects, arrays, and scalars.
package pagarme
