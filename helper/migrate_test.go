package helper_test

import (
	"testing"

	"alora/config"
	"alora/helper"

	"github.com/stretchr/testify/assert"
)

func TestRunner_UnknownAction(t *testing.T) {
	err := helper.Runner(&config.Config{}, "sideways")

	assert.EqualError(t, err, `unknown migration action "sideways"`)
}
