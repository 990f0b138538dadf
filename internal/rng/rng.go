package rng

import "math/rand/v2"

// RNG 抽象随机源，测试时可以替换成固定值或序列
type RNG interface {
	// Float64 返回 [0,1) 的均匀随机数
	Float64() float64
}

type defaultRNG struct{}

func (defaultRNG) Float64() float64 { return rand.Float64() }

// Default 生产环境用的随机源（游戏随机性，不用于安全场景）
func Default() RNG { return defaultRNG{} }

// Fixed 每次都返回同一个值
type Fixed float64

func (f Fixed) Float64() float64 { return float64(f) }

// Sequence 按顺序返回给定的值，用完从头循环
type Sequence struct {
	values []float64
	idx    int
}

func NewSequence(values ...float64) *Sequence {
	return &Sequence{values: values}
}

func (s *Sequence) Float64() float64 {
	v := s.values[s.idx%len(s.values)]
	s.idx++
	return v
}

// Consumed 已经取走了多少个值（测试里用来断言消耗次数）
func (s *Sequence) Consumed() int { return s.idx }
