package task

import "github.com/idilsaglam/tasklist/internal/model"

// Sequence hands out increasing ids starting at 1.
func Sequence() func() model.ID {
	var last model.ID
	return func() model.ID {
		last++
		return last
	}
}
