package mqtt

import (
	"fmt"
	"strings"
)

// DefaultTopicPrefix is the root of every rigdesc topic.
const DefaultTopicPrefix = "rigdesc"

// Topics provides builders for rigdesc MQTT topics.
// Using these helpers keeps topic naming consistent across the codebase.
//
//	topics := mqtt.Topics{}
//	topics.InstrumentDocument("Nikon2P.1")
//	// Returns: "rigdesc/instrument/Nikon2P.1/document"
type Topics struct {
	// Prefix replaces DefaultTopicPrefix when set.
	Prefix string
}

func (t Topics) prefix() string {
	if t.Prefix == "" {
		return DefaultTopicPrefix
	}
	return t.Prefix
}

// InstrumentDocument returns the retained topic carrying the latest
// serialized document of an instrument.
//
// Example: rigdesc/instrument/Nikon2P.1/document
func (t Topics) InstrumentDocument(instrumentID string) string {
	return fmt.Sprintf("%s/instrument/%s/document", t.prefix(), Level(instrumentID))
}

// InstrumentDigest returns the retained topic carrying the SHA-256 digest
// of the latest document, so subscribers can detect changes cheaply.
//
// Example: rigdesc/instrument/Nikon2P.1/digest
func (t Topics) InstrumentDigest(instrumentID string) string {
	return fmt.Sprintf("%s/instrument/%s/digest", t.prefix(), Level(instrumentID))
}

// AllInstrumentDocuments returns the subscription pattern for every
// instrument document.
//
// Example: rigdesc/instrument/+/document
func (t Topics) AllInstrumentDocuments() string {
	return t.prefix() + "/instrument/+/document"
}

// SystemStatus returns the topic for publisher online/offline status.
//
// Example: rigdesc/system/status
func (t Topics) SystemStatus() string {
	return t.prefix() + "/system/status"
}

var levelReplacer = strings.NewReplacer("/", "-", "+", "-", "#", "-", " ", "_")

// Level makes s safe to use as a single topic level. Separators and
// wildcards become hyphens and spaces become underscores.
func Level(s string) string {
	return levelReplacer.Replace(s)
}

// validTopic reports whether topic can be published to.
func validTopic(topic string) bool {
	return topic != "" && !strings.ContainsAny(topic, "+#")
}
