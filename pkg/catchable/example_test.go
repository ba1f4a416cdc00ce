package catchable_test

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/dkoosis/catchable/pkg/catchable"
)

func ExampleAsCatchable() {
	plain := catchable.FromSlice(1, 2, 3)
	c := catchable.AsCatchable(plain)

	for v, err := range c.All() {
		fmt.Println(v, err)
	}
	fmt.Println(catchable.AsCatchable[int](c) == c)
	// Output:
	// 1 <nil>
	// 2 <nil>
	// 3 <nil>
	// true
}

func ExampleOn() {
	errMissing := errors.New("missing")
	lookup := map[string]int{"a": 1, "c": 3}

	values := catchable.Select(catchable.FromSlice("a", "b", "c"), func(key string) (int, error) {
		v, ok := lookup[key]
		if !ok {
			return 0, fmt.Errorf("key %q: %w", key, errMissing)
		}
		return v, nil
	}).Catch(catchable.On(errMissing, catchable.Skip))

	for v, err := range values.All() {
		if err != nil {
			fmt.Println("error:", err)
			continue
		}
		fmt.Println(v)
	}
	// Output:
	// 1
	// 3
}

func ExampleParsePolicy() {
	policy, err := catchable.ParsePolicy([]byte("on_error: stop\n"))
	if err != nil {
		fmt.Println(err)
		return
	}

	c := catchable.Select(catchable.FromSlice("1", "two", "3"), strconv.Atoi).Catch(policy.Handler())
	for v := range c.All() {
		fmt.Println(v)
	}
	// Output:
	// 1
}
