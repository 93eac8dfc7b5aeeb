// Package form implements a small state machine for structured forms: field
// values, per-field validation errors, per-field touched flags and a
// submission-in-flight flag.
//
// Transitions are expressed as a pure Reduce(state, action) function. Engine
// owns the current State and applies actions on behalf of callers:
//
//	engine, err := form.New(form.Config{
//		InitialValues: form.Values{"username": "", "password": ""},
//		Validate:      rules.Validate,
//		OnSubmit: func(ctx context.Context, values form.Values) error {
//			return api.Login(ctx, values["username"], values["password"])
//		},
//	})
//
//	_ = engine.Change("username", "hello")
//	_ = engine.Blur("username")
//	sub := engine.Submit(ctx)
//	res, _ := sub.Wait(ctx)
//
// Validation runs eagerly: once at construction and again after every Change
// or SetField. Blur and the touched-marking step of Submit only change which
// errors are visible (see State.VisibleErrors), never the errors themselves.
//
// Submit always touches every field and raises IsSubmitting. The submit
// callback only runs when no errors are present. IsSubmitting is lowered when
// the callback settles, whether it succeeded or not; failures are reported as
// *SubmitError through the Submission handle and the WithSubmitResult
// observer. By default a submit rejected by validation lowers IsSubmitting
// straight away and empty error messages do not block submission; see
// WithHoldSubmittingOnInvalid and WithStrictErrors for the literal variants.
package form
