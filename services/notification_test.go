package services

import (
	"sync"
	"testing"
	"volunteermatch-backend/config"

	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	config.Load()
	m.Run()
}

func TestGetNotificationServiceIsSingleton(t *testing.T) {
	var wg sync.WaitGroup
	results := make([]*NotificationService, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = GetNotificationService()
		}(i)
	}
	wg.Wait()

	for _, ns := range results[1:] {
		assert.Same(t, results[0], ns)
	}
}
