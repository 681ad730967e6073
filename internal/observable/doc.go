package observable

// Package observable provides a replay-latest subject: new subscribers receive
// the current value synchronously on Subscribe, later publications arrive on a
// per-subscriber goroutine in publication order. It is the propagation layer
// between the theme controller, the catalog and the views.
