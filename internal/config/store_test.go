package config

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStoreLoadReturnsCurrent(t *testing.T) {
	first := &Config{JWT: JWTConfig{Secret: "first-secret"}}
	store := NewStore(first)
	assert.Same(t, first, store.Load())

	second := &Config{JWT: JWTConfig{Secret: "second-secret"}}
	store.Swap(second)
	assert.Same(t, second, store.Load())
}

// Readers racing a swap must always observe one complete snapshot, never a
// mix of fields from two configs.
func TestStoreSwapNeverTearsSnapshot(t *testing.T) {
	a := &Config{
		Server: ServerConfig{Port: "8080"},
		JWT:    JWTConfig{Secret: "secret-a"},
	}
	b := &Config{
		Server: ServerConfig{Port: "9090"},
		JWT:    JWTConfig{Secret: "secret-b"},
	}
	store := NewStore(a)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 10000; i++ {
			if i%2 == 0 {
				store.Swap(b)
			} else {
				store.Swap(a)
			}
		}
	}()

	var wg sync.WaitGroup
	for r := 0; r < 4; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 10000; i++ {
				cfg := store.Load()
				switch cfg.JWT.Secret {
				case "secret-a":
					assert.Equal(t, "8080", cfg.Server.Port)
				case "secret-b":
					assert.Equal(t, "9090", cfg.Server.Port)
				default:
					assert.Failf(t, "torn config", "unexpected secret %q", cfg.JWT.Secret)
				}
			}
		}()
	}

	wg.Wait()
	<-done
}
