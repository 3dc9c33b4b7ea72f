package field

import (
	"fmt"

	"github.com/0xalexb/userinput/element"
)

const (
	packElement           = "createForPack"
	unselectedPackElement = "createForUnselectedPack"
	osElement             = "os"
	nameAttribute         = "name"
)

// ElementReader holds what every element reader shares: the Config and the
// pack and operating system constraints that any element may declare.
type ElementReader struct {
	config *Config
}

// NewElementReader returns an ElementReader over cfg. A nil cfg is replaced
// by NewConfig().
func NewElementReader(cfg *Config) ElementReader {
	if cfg == nil {
		cfg = NewConfig()
	}

	return ElementReader{config: cfg}
}

// Config returns the shared configuration.
func (r ElementReader) Config() *Config {
	return r.config
}

// ReadPacks returns the names of the createForPack children of el.
func (r ElementReader) ReadPacks(el element.Element) ([]string, error) {
	return r.readPackNames(el, packElement)
}

// ReadUnselectedPacks returns the names of the createForUnselectedPack
// children of el.
func (r ElementReader) ReadUnselectedPacks(el element.Element) ([]string, error) {
	return r.readPackNames(el, unselectedPackElement)
}

// ReadOsModels returns the os children of el. An empty result means the
// element applies to every operating system.
func (r ElementReader) ReadOsModels(el element.Element) []OsModel {
	result := make([]OsModel, 0)

	if element.IsNil(el) {
		return result
	}

	for _, constraint := range el.ChildrenNamed(osElement) {
		result = append(result, OsModel{
			Family:  r.config.RawString(constraint, "family", ""),
			Name:    r.config.RawString(constraint, "name", ""),
			Version: r.config.RawString(constraint, "version", ""),
			Arch:    r.config.RawString(constraint, "arch", ""),
			Jre:     r.config.RawString(constraint, "jre", ""),
		})
	}

	return result
}

func (r ElementReader) readPackNames(el element.Element, childName string) ([]string, error) {
	result := make([]string, 0)

	if element.IsNil(el) {
		return result, nil
	}

	for index, pack := range el.ChildrenNamed(childName) {
		name, err := r.config.Attribute(pack, nameAttribute)
		if err != nil {
			return nil, fmt.Errorf("<%s> %d: %w", childName, index, err)
		}

		result = append(result, name)
	}

	return result, nil
}
