package sitegen

import (
	"testing"

	"go.uber.org/goleak"
)

// Site.Build runs conversion workers; every test must leave none behind.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
