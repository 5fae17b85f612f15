// Package errors provides structured error handling for charbuilder.
//
// Errors carry a code, a message, and optional metadata, and wrap causes
// without losing either:
//
//	err := errors.NotFoundf("race %q not found", key.Name)
//	err := errors.OutOfRange("character level cannot exceed 20").
//	    WithMeta("level", level)
//
// Wrapping preserves the original code:
//
//	if err := repo.Get(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to load character")
//	}
//
// Checking uses the code helpers rather than string matching:
//
//	if errors.IsNotFound(err) { ... }
//	if errors.IsOutOfRange(err) { ... }
//
// Multi-field validation uses the builder:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("playerID", input.PlayerID, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
package errors
