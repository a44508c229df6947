package engine

import (
	cryptoRand "crypto/rand"
	"math/rand/v2"
)

// RandomSource источник независимых равномерных чисел в [0, 1)
type RandomSource interface {
	Float64() float64
}

// randSource обёртка над генератором math/rand/v2
type randSource struct {
	r *rand.Rand
}

// NewRandomSource источник по умолчанию: ChaCha8 с зерном из crypto/rand,
// по прошлым исходам нельзя восстановить будущие
func NewRandomSource() RandomSource {
	var seed [32]byte
	_, _ = cryptoRand.Read(seed[:])
	return &randSource{r: rand.New(rand.NewChaCha8(seed))}
}

func (s *randSource) Float64() float64 {
	return s.r.Float64()
}

// NewSeededSource воспроизводимый PCG источник (симуляции RTP, отладка)
func NewSeededSource(seed uint64) RandomSource {
	return &randSource{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}
