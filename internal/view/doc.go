package view

// Package view derives per-page view state from the theme controller and the
// catalog. Views never own canonical data: they keep the last snapshot they
// were sent and recompute their state from it.
