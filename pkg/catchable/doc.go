/*
Package catchable moves lazy sequences into a context where per-element errors can be intercepted.

A [Sequence] is anything that can produce an iter.Seq2 of values paired with errors. [AsCatchable] wraps such a
sequence into a [Catchable] decorator without touching any of its elements. Wrapping is idempotent: a value that is
already catchable is returned as is, so helpers can call [AsCatchable] on their inputs without stacking decorators.

Catchable sequences carry the interception capability. [Catchable.Catch] attaches [Handler]s that decide, for each
failing element, whether the error propagates to the consumer, the element is skipped, or iteration stops. Projection
stages ([Select], [Where]) run user functions per element and turn their errors and panics into failing elements, so a
handler attached further down the chain can deal with them. Call sites keep the plain range syntax throughout.

# Usage

	users := catchable.Select(
	        catchable.AsCatchable(catchable.FromSlice(ids...)),
	        store.LoadUser,
	).Catch(catchable.On(store.ErrNotFound, catchable.Skip))

	for u, err := range users.All() {
	        if err != nil {
	                return err
	        }
	        fmt.Println(u.Name)
	}

# Policies

Handlers are plain functions. For configuration-driven behaviour a [Policy] can be loaded from YAML and turned into a
handler with [Policy.Handler]; [Logged] decorates any handler with structured logging of the intercepted errors.

# API Safety

No handler is installed by default: a freshly wrapped sequence yields exactly what its source yields. Decorators are
immutable, and [Catchable.Catch] returns a new value. Nothing in this package starts goroutines; a catchable sequence
can be iterated concurrently exactly when its source can.
*/
package catchable
