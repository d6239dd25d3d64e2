// internal/utils/prng.go
package utils

import (
	"go-bouncing-ball/internal/config"
	"math/rand"
	"time"
)

// PRNGService — обёртка над генератором случайных чисел Go, позволяющая
// запускать анимацию с предсказуемым (seeded) рандомом.
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService создает новый экземпляр сервиса с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// UpdateID возвращает идентификатор тика в диапазоне [0, config.UpdateIDRange).
func (s *PRNGService) UpdateID() int {
	return s.rng.Intn(config.UpdateIDRange)
}
