// Package passwordgame runs the twenty-phase password game.
//
// The phases ship as an embedded YAML catalogue decoded by phase.LoadCatalog.
// At phase N a password is checked against phases 1..N together; passing all
// of them unlocks the next phase.
//
//	gate, err := passwordgame.DefaultGate()
//	if err != nil {
//	    return err
//	}
//	svc := passwordgame.NewService(gate, passwordgame.WithLogger(log))
//
//	progress := svc.Evaluate(ctx, 3, "hunter")
//	// progress.Passed == false: phases 2 and 3 want a digit and a
//	// special character.
//
//	r.Mount("/password", passwordgame.Router(svc, errorHandler))
package passwordgame
