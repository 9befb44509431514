// Package lang provides localized bot responses loaded from JSON files.
// Each supported language lives in its own <code>.json file with a flat
// key to template mapping.
package lang

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/KalekStudios/SleepDeprivedBotGo/pkg/logger"
	json "github.com/goccy/go-json"
)

// DefaultLanguage is the fallback used when a key is missing from the
// requested language.
const DefaultLanguage = "en"

// Manager holds the loaded string tables for every language
type Manager struct {
	tables map[string]map[string]string
	mu     sync.RWMutex
}

var (
	manager *Manager
	once    sync.Once
)

// Init loads the global language manager from a directory
func Init(dir string) *Manager {
	once.Do(func() {
		manager = NewManager(dir)
	})
	return manager
}

// Get returns the global language manager instance
func Get() *Manager {
	return manager
}

// NewManager loads every <code>.json file in dir. A missing or empty
// directory yields a manager with no strings, every lookup then returns
// the missing-key marker instead of failing.
func NewManager(dir string) *Manager {
	m := &Manager{
		tables: make(map[string]map[string]string),
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		logger.Warn(fmt.Sprintf("Could not read the languages directory '%s': %v", dir, err), "Lang")
		return m
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		code := strings.TrimSuffix(entry.Name(), ".json")
		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			logger.Error(fmt.Sprintf("Could not read language file '%s': %v", entry.Name(), err), "Lang")
			continue
		}

		table := make(map[string]string)
		if err := json.Unmarshal(data, &table); err != nil {
			logger.Error(fmt.Sprintf("Could not parse language file '%s': %v", entry.Name(), err), "Lang")
			continue
		}

		m.tables[code] = table
		logger.System(fmt.Sprintf("Loaded language '%s' (%d strings)", code, len(table)), "Lang")
	}

	return m
}

// Languages returns the codes of every loaded language
func (m *Manager) Languages() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	codes := make([]string, 0, len(m.tables))
	for code := range m.tables {
		codes = append(codes, code)
	}
	return codes
}

// Has reports whether a language is loaded
func (m *Manager) Has(language string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.tables[language]
	return ok
}

// lookup resolves a key in the requested language, falling back to the
// default language when absent.
func (m *Manager) lookup(key, language string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if table, ok := m.tables[language]; ok {
		if value, ok := table[key]; ok {
			return value, true
		}
	}
	if language != DefaultLanguage {
		if table, ok := m.tables[DefaultLanguage]; ok {
			if value, ok := table[key]; ok {
				return value, true
			}
		}
	}
	return "", false
}

// GetString returns the localized string for a key, formatted with args.
// Unknown keys return a visible marker so broken lookups show up in chat
// instead of silently sending nothing.
func (m *Manager) GetString(key, language string, args ...interface{}) string {
	value, ok := m.lookup(key, language)
	if !ok {
		return fmt.Sprintf("[MISSING: %s]", key)
	}
	if len(args) == 0 {
		return value
	}
	return fmt.Sprintf(value, args...)
}
