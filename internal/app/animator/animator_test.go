package animator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Next_StartsAtOne(t *testing.T) {
	a := New(0)

	assert.Equal(t, 1, a.Next(39))
	assert.Equal(t, 2, a.Next(39))
	assert.Equal(t, 2, a.Current())
}

func Test_Next_Wraps(t *testing.T) {
	a := New(38)

	assert.Equal(t, 0, a.Next(39))
	assert.Equal(t, 1, a.Next(39))
}

func Test_Next_Sequence(t *testing.T) {
	tests := []struct {
		name  string
		start int
		n     int
		calls int
	}{
		{name: "reference frames", start: 0, n: 39, calls: 100},
		{name: "mid sequence", start: 17, n: 39, calls: 39},
		{name: "single frame", start: 0, n: 1, calls: 5},
		{name: "two frames", start: 1, n: 2, calls: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := New(tt.start)
			seen := make(map[int]bool)

			for i := 1; i <= tt.calls; i++ {
				got := a.Next(tt.n)

				assert.Equal(t, (tt.start+i)%tt.n, got)
				assert.GreaterOrEqual(t, got, 0)
				assert.Less(t, got, tt.n)

				if i <= tt.n {
					seen[got] = true
				}
			}

			if tt.calls >= tt.n {
				assert.Len(t, seen, tt.n, "every index visited within n calls")
			}
		})
	}
}

func Test_Next_NonPositiveModulus(t *testing.T) {
	a := New(3)

	assert.Equal(t, 0, a.Next(0))
	assert.Equal(t, 3, a.Current())
}

func Test_Reset(t *testing.T) {
	a := New(12)
	a.Reset()

	assert.Equal(t, 0, a.Current())
	assert.Equal(t, 1, a.Next(39))
}
