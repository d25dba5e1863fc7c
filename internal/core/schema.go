package core

import (
	"strconv"
	"strings"
)

// Canonical column names of the rate table, in sheet order.
const (
	ColNome       = "Nome"
	ColDescricao  = "Descricao"
	ColCepInicio  = "CepInicio"
	ColCepFim     = "CepFim"
	ColPesoInicio = "PesoInicio"
	ColPesoFim    = "PesoFim"
	ColValor      = "Valor"
	ColPrazo      = "Prazo"
	ColDiaUtil    = "DiaUtil"
)

// ErrorColumn is the derived column the exporter appends to carry the
// accumulated per-row messages.
const ErrorColumn = "Erros na Linha"

// CanonicalColumns is the expected header, in order. Read-only after init;
// safe to share across concurrent validation runs.
var CanonicalColumns = []string{
	ColNome,
	ColDescricao,
	ColCepInicio,
	ColCepFim,
	ColPesoInicio,
	ColPesoFim,
	ColValor,
	ColPrazo,
	ColDiaUtil,
}

// rangeValueColumns are the columns the value-level checks need. The lookup
// is by name, tolerant of reordering.
var rangeValueColumns = []string{
	ColCepInicio,
	ColCepFim,
	ColPesoInicio,
	ColPesoFim,
	ColValor,
	ColPrazo,
}

// weightColumns are the two columns subject to decimal-comma coercion.
var weightColumns = []string{ColPesoInicio, ColPesoFim}

// ColumnType classifies the value type of a whole column.
type ColumnType int

const (
	TypeText ColumnType = iota
	TypeInteger
	TypeFloat
)

// String returns the type name used in user-facing messages.
func (ct ColumnType) String() string {
	switch ct {
	case TypeInteger:
		return "int64"
	case TypeFloat:
		return "float64"
	default:
		return "object"
	}
}

// expectedTypes is the canonical column type at each position. Only positions
// 2-5 (the postal and weight bounds) are enforced by the verifier; upstream
// loaders coerce the remaining columns loosely.
var expectedTypes = []ColumnType{
	TypeText,
	TypeText,
	TypeInteger,
	TypeInteger,
	TypeFloat,
	TypeFloat,
	TypeInteger,
	TypeInteger,
	TypeText,
}

// enforcedFrom and enforcedTo bound the positions the type verifier checks.
const (
	enforcedFrom = 2
	enforcedTo   = 5
)

// inferColumnType classifies a column from its cell values: integer when
// every non-empty cell parses as int64, float when every non-empty cell
// parses as a number and at least one needs a fraction, text otherwise.
func inferColumnType(values []string) ColumnType {
	hasInteger := false
	hasFloat := false

	for _, value := range values {
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}
		if _, err := strconv.ParseInt(value, 10, 64); err == nil {
			hasInteger = true
			continue
		}
		if _, err := strconv.ParseFloat(value, 64); err == nil {
			hasFloat = true
			continue
		}
		return TypeText
	}

	switch {
	case hasFloat:
		return TypeFloat
	case hasInteger:
		return TypeInteger
	default:
		return TypeText
	}
}
