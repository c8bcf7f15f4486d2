package archive

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObjectName(t *testing.T) {
	assert.Equal(t, "clean/card/up-1/card_clean.csv", ObjectName("card", "up-1", "card_clean.csv"))
	assert.Equal(t, "clean/marketplace/up-2/mkt_clean.csv", ObjectName("marketplace", "up-2", "mkt_clean.csv"))
}
