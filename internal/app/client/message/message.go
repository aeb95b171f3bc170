// Package message хранит журнал сообщений для пользователя.
package message

import "sync"

// Service - упорядоченный журнал строк в памяти процесса
type Service struct {
	mu       sync.Mutex
	messages []string
}

func NewService() *Service {
	return &Service{}
}

// Add добавляет сообщение в конец журнала
func (s *Service) Add(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, message)
}

func (s *Service) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = nil
}

// Messages возвращает копию журнала
func (s *Service) Messages() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]string, len(s.messages))
	copy(out, s.messages)
	return out
}

func (s *Service) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.messages)
}
