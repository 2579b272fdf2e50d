// ABOUTME: Tests for the menu intent parser
// ABOUTME: Covers numeric extraction, the bilingual lexicon and parse failures

package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParser_Digits(t *testing.T) {
	p := NewParser()

	tests := []struct {
		input  string
		intent Intent
		number int
	}{
		{"1", ProductSearch, 1},
		{"2", TechnicalInfo, 2},
		{"3", OrderStatus, 3},
		{"4", ReturnsWarranty, 4},
		{"5", GeneralInfo, 5},
		{"6", Other, 6},
		{" 1 ", ProductSearch, 1},
		{"1.", ProductSearch, 1},
		{"2, por favor", TechnicalInfo, 2},
		{"opción 1", ProductSearch, 1},
		{"Opción 4", ReturnsWarranty, 4},
		{"option 5", GeneralInfo, 5},
		{"número 3", OrderStatus, 3},
		{"number 6", Other, 6},
	}

	for _, tt := range tests {
		parsed := p.Parse(tt.input)
		assert.Equal(t, tt.intent, parsed.Intent, "input %q", tt.input)
		assert.Equal(t, tt.number, parsed.Number, "input %q", tt.input)
		assert.InDelta(t, 0.9, parsed.Confidence, 0.001, "input %q", tt.input)
	}
}

func TestParser_OutOfRangeDigitIsNotAnError(t *testing.T) {
	p := NewParser()

	parsed := p.Parse("9")
	assert.Equal(t, None, parsed.Intent)
	assert.Equal(t, 9, parsed.Number)
	assert.InDelta(t, 0.1, parsed.Confidence, 0.001)

	parsed = p.Parse("0")
	assert.Equal(t, None, parsed.Intent)
}

func TestParser_Keywords(t *testing.T) {
	p := NewParser()

	tests := []struct {
		input  string
		intent Intent
	}{
		{"quiero buscar repuestos", ProductSearch},
		{"pastillas de freno para mi carro", ProductSearch},
		{"brake pads please", ProductSearch},
		{"información técnica", TechnicalInfo},
		{"estado de mi pedido", OrderStatus},
		{"where is my delivery", OrderStatus},
		{"necesito una garantía", ReturnsWarranty},
		{"warranty claim", ReturnsWarranty},
		{"horario de la tienda", GeneralInfo},
		{"otra cosa", Other},
	}

	for _, tt := range tests {
		parsed := p.Parse(tt.input)
		assert.Equal(t, tt.intent, parsed.Intent, "input %q", tt.input)
		assert.InDelta(t, 0.6, parsed.Confidence, 0.001, "input %q", tt.input)
	}
}

func TestParser_NoMatch(t *testing.T) {
	p := NewParser()

	for _, input := range []string{"", "   ", "hola", "xyz"} {
		parsed := p.Parse(input)
		assert.Equal(t, None, parsed.Intent, "input %q", input)
		assert.Zero(t, parsed.Confidence, "input %q", input)
	}
}

func TestParser_Deterministic(t *testing.T) {
	p := NewParser()

	// The same input always yields the same result.
	first := p.Parse("buscar pedido")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, p.Parse("buscar pedido"))
	}
}

func TestIntent_String(t *testing.T) {
	assert.Equal(t, "product_search", ProductSearch.String())
	assert.Equal(t, "technical_info", TechnicalInfo.String())
	assert.Equal(t, "order_status", OrderStatus.String())
	assert.Equal(t, "returns_warranty", ReturnsWarranty.String())
	assert.Equal(t, "general_info", GeneralInfo.String())
	assert.Equal(t, "other", Other.String())
	assert.Equal(t, "none", None.String())
}
