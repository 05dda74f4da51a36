package entity

import "testing"

const benchCapacity = 1024

// fullPool fills every slot, cycling through the kinds
func fullPool(b *testing.B) *Pool {
	b.Helper()
	p := NewPool(benchCapacity)
	for i := range benchCapacity {
		kind := Kind(i % 4)
		s := Spawn{Kind: kind, Pos: Vec2{X: float64(i), Y: 1}, Vel: Vec2{X: 1, Y: 1}, Scale: Vec2{X: 1, Y: 1}}
		if _, err := p.Allocate(s); err != nil {
			b.Fatal(err)
		}
	}
	return p
}

// Case 1: single field read through the iterator
func BenchmarkPool_SumX(b *testing.B) {
	p := fullPool(b)
	var sum float64
	for b.Loop() {
		sum = 0
		for obj := range p.All() {
			sum += obj.Pos.X
		}
	}
	_ = sum
}

// Case 2: position += velocity * dt for every object
func BenchmarkPool_Integrate(b *testing.B) {
	p := fullPool(b)
	for b.Loop() {
		for obj := range p.All() {
			obj.Integrate(1.0/60, -37)
		}
	}
}

// Case 3: filter on kind
func BenchmarkPool_CountEnemies(b *testing.B) {
	p := fullPool(b)
	var n int
	for b.Loop() {
		n = p.Count(KindEnemy)
	}
	_ = n
}

// Case 4: sparse pool, most slots inactive
func BenchmarkPool_SparseIterate(b *testing.B) {
	p := fullPool(b)
	i := 0
	for obj := range p.All() {
		if i%16 != 0 {
			p.Deactivate(obj.Handle)
		}
		i++
	}

	var sum float64
	for b.Loop() {
		sum = 0
		for obj := range p.All() {
			sum += obj.Pos.X
		}
	}
	_ = sum
}

// Case 5: shot churn, allocate and free the same slot
func BenchmarkPool_AllocateDeactivate(b *testing.B) {
	p := NewPool(benchCapacity)
	s := Spawn{Kind: KindShot, Scale: Vec2{X: 0.5, Y: 0.5}, PlayerOwned: true}
	for b.Loop() {
		h, err := p.Allocate(s)
		if err != nil {
			b.Fatal(err)
		}
		p.Deactivate(h)
	}
}
