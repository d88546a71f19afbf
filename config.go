package vec

import (
	"fmt"
	"unsafe"
)

// InitialCapacity is the number of slots allocated at creation when
// no explicit configuration is provided.
const InitialCapacity = 8

var bytesPerSlot = uint(unsafe.Sizeof(uintptr(0)))

// nextCapacity reports the smallest power of GrowthFactor greater
// than or equal to target. Start at 1 and keep multiplying by the
// growth factor until the target capacity is met; landing on these
// boundaries is what keeps appending amortized constant time.
func nextCapacity(target uint) uint {
	capacity := uint(1)
	for capacity < target {
		capacity *= GrowthFactor
	}
	return capacity
}

// DetermineCapacity generates a Config appropriate for a vector that
// can hold numberOfEntries without any automatic reallocation
func DetermineCapacity(numberOfEntries uint) Config {
	return Config{InitialCapacity: nextCapacity(numberOfEntries)}
}

// Config controls the sizing of the vector
type Config struct {
	// The number of slots to allocate at creation. Rounded up to
	// a power of GrowthFactor; zero means InitialCapacity.
	InitialCapacity uint
}

func (c *Config) initialCapacity() uint {
	if c.InitialCapacity == 0 {
		return InitialCapacity
	}
	return nextCapacity(c.InitialCapacity)
}

// GrowthSteps reports how many reallocations growing to target
// elements costs from the configured starting capacity.
func (c *Config) GrowthSteps(target uint) uint {
	steps := uint(0)
	for capacity := c.initialCapacity(); capacity < target; capacity *= GrowthFactor {
		steps++
	}
	return steps
}

// SlotBytes reports the space the slot array occupies at the
// configured starting capacity. Payload storage is excluded since the
// payload representation is opaque to the vector.
func (c *Config) SlotBytes() uint {
	return c.initialCapacity() * bytesPerSlot
}

// ExplainIndent will print an indented summary of the configuration to stdout
func (c *Config) ExplainIndent(indent string) {
	fmt.Printf("%s%8d slots at creation\n", indent, c.initialCapacity())
	fmt.Printf("%s%8d x growth factor per reallocation\n", indent, GrowthFactor)
	fmt.Printf("%s   %s slot storage at creation\n", indent, humanBytes(c.SlotBytes()))
}

// Explain will print a summary of the configuration to stdout
func (c *Config) Explain() {
	c.ExplainIndent("")
}

func humanBytes(bytes uint) string {
	v := float64(bytes)
	suffix := "bytes"
	if v > 1024 {
		v /= 1024.
		suffix = "KB"
		if v > 1024. {
			suffix = "MB"
			v /= 1024.0
			if v > 1024. {
				suffix = "GB"
				v /= 1024.
			}
		}
	}
	if v < 10 {
		return fmt.Sprintf("%0.2f %s", v, suffix)
	} else if v < 100 {
		return fmt.Sprintf("%0.1f %s", v, suffix)
	} else {
		return fmt.Sprintf("%0.0f %s", v, suffix)
	}
}
