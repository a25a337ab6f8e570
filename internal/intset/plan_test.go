package intset

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlan_Empty(t *testing.T) {
	assert.Equal(t, 0, Plan(nil).Size())
}

func TestPlan_OnlyDenses(t *testing.T) {
	got := Plan([]Set{NewDense(0, 9), NewDense(3, 12), NewDense(5, 7)})
	assert.Equal(t, KindDense, got.Kind())
	assert.Equal(t, []int{5, 6, 7}, got.Elems())
}

func TestPlan_SingleSet(t *testing.T) {
	got := Plan([]Set{NewExplicit([]int{2, 4, 6})})
	assert.Equal(t, []int{2, 4, 6}, got.Elems())
}

func TestPlan_DenseJoinsLast(t *testing.T) {
	got := Plan([]Set{
		NewDense(0, 4),
		NewExplicit([]int{1, 3, 5, 7}),
		NewView([]int{2, 3, 4, 9}, 1),
	})
	// explicit ∩ view = {1,3}; ∩ [0,4] = {1,3}
	assert.Equal(t, []int{1, 3}, got.Elems())
}

func TestPlan_OrderIndependent(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	sets := []Set{
		NewDense(0, 50),
		NewExplicit([]int{3, 8, 15, 21, 34}),
		NewView([]int{8, 15, 22, 34, 40}, 0),
		NewExplicit([]int{1, 3, 8, 15, 20, 34, 49}),
	}

	want := Plan(sets).Elems()
	for i := 0; i < 10; i++ {
		shuffled := append([]Set(nil), sets...)
		rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})
		assert.Equal(t, want, Plan(shuffled).Elems())
	}
}

func TestPlan_WithComplement(t *testing.T) {
	not := NewExplicit([]int{2, 3})
	not.Complement = true

	got := Plan([]Set{
		NewExplicit([]int{1, 2, 3, 4, 5}),
		not,
	})
	assert.False(t, got.Complement)
	assert.Equal(t, []int{1, 4, 5}, got.Elems())
}

func TestPlan_AllComplementsStaySymbolic(t *testing.T) {
	na := NewExplicit([]int{1, 2})
	na.Complement = true
	nb := NewExplicit([]int{2, 3})
	nb.Complement = true

	got := Plan([]Set{na, nb})
	assert.True(t, got.Complement)
	assert.Equal(t, []int{2}, got.Elems())
}
