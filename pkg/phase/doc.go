// Package phase gates a string through an ordered list of numbered phases.
//
// Each Phase owns one validator.StringSchema and a label. Given the player's
// current phase number, Gate.EvaluateUpTo evaluates every phase numbered at or
// below it and reports pass/fail per phase, in registration order. Phases
// accumulate: reaching phase 5 never relaxes phases 1 through 4.
//
// Phase lists are built explicitly, either in code or from a YAML catalog
// through LoadCatalog, where refinements are referenced by name and resolved
// through a Refinements registry.
//
// # Usage
//
//	phases, err := phase.LoadCatalogFile("phases.yaml", nil)
//	if err != nil {
//	    return err
//	}
//	gate := phase.NewGate(phases...)
//
//	for _, s := range gate.EvaluateUpTo(current, password) {
//	    fmt.Println(s.Number, s.IsValid)
//	}
//
// A Gate is not synchronised: register every phase before sharing it.
package phase
