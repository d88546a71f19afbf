package main

import (
	"fmt"

	vec "github.com/facebookincubator/go-vecext"
)

func main() {
	// optimize your vector when you know ahead of time how many
	// elements it will hold.  Otherwise, just use NewInt()
	config := vec.DetermineCapacity(4)
	v := vec.NewWithConfig(vec.Value[int](), config)
	defer v.Destroy()

	for _, n := range []int{1, 2, 3} {
		v.PushBack(&n)
	}

	ninetyNine := 99
	v.Insert(1, &ninetyNine)
	v.Erase(0)

	fmt.Printf("size %d, capacity %d\n", v.Size(), v.Capacity())
	v.Each(func(ix uint, el *int) bool {
		fmt.Printf("%d: %d\n", ix, *el)
		return true
	})

	// Dump the whole vector in textual form
	v.DebugDump()
}
