package test

import (
	"testing"

	"github.com/marcuscaisey/dartcomplete/test/completiontest"
)

func TestCompletion(t *testing.T) {
	completiontest.Run(t, completiontest.CheckFile)
}
