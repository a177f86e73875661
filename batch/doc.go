// Package batch fits many independent series concurrently.
//
// A Fitter runs regression.Fit for every Series on a bounded pool of
// goroutines. Series whose X, Y and SigmaY are identical are fitted once and
// share the Result. Failures of individual series are recorded in their
// Outcome and do not stop the batch unless fail-fast is enabled.
//
//	f, err := batch.NewFitter(
//	    batch.WithConcurrency(8),
//	    batch.WithLogger(logger),
//	    batch.WithFitOptions(regression.WithScaledCovariance(true)),
//	)
//	if err != nil {
//	    return err
//	}
//
//	outcomes, err := f.FitAll(ctx, series)
//	if err != nil {
//	    return err
//	}
//	for _, o := range outcomes {
//	    if o.Err != nil {
//	        continue
//	    }
//	    fmt.Println(o.Name, o.Result)
//	}
package batch
