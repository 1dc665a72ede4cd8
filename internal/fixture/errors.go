package fixture

import "errors"

// ErrAmbiguousBody is returned when a fixture names more than one body source.
var ErrAmbiguousBody = errors.New("more than one body source")

// ErrInvalidFixture is returned for fixtures that decode but make no sense.
var ErrInvalidFixture = errors.New("invalid fixture")
