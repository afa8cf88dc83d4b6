// File: generator/bench_test.go
package generator

import "testing"

func BenchmarkRun_Default(b *testing.B) {
	cfg := DefaultConfig()
	cfg.GenerationConstraints.MaxAttempts = 50
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := Run(cfg, WithSeed(int64(i))); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRun_Small(b *testing.B) {
	cfg := smallConfig()
	for i := 0; i < b.N; i++ {
		if _, err := Run(cfg, WithSeed(int64(i))); err != nil {
			b.Fatal(err)
		}
	}
}
