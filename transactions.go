package portfolio

import "strings"

// TransactionType is the kind of a ledger record.
type TransactionType int

const (
	// Other is any type literal that is neither a deposit nor a withdrawal.
	// It is accounted like a withdrawal.
	Other TransactionType = iota
	Deposit
	Withdrawal
)

func (t TransactionType) String() string {
	switch t {
	case Deposit:
		return "DEPOSIT"
	case Withdrawal:
		return "WITHDRAWAL"
	default:
		return "OTHER"
	}
}

// ParseTransactionType maps a ledger literal to its TransactionType.
//
// Literals are matched exactly: "deposit" is not a Deposit. Unknown values
// are not an error, they yield Other.
func ParseTransactionType(s string) TransactionType {
	switch strings.TrimSpace(s) {
	case "DEPOSIT":
		return Deposit
	case "WITHDRAWAL":
		return Withdrawal
	default:
		return Other
	}
}

// Record is a single line of the ledger.
type Record struct {
	Token     string
	Timestamp int64  // epoch seconds
	Amount    string // as written in the ledger, see ParseQuantity
	Type      TransactionType
	RawType   string // the literal transaction_type column
	Line      int    // 1-based line in the ledger
}

// Signed parses the record amount and returns its signed contribution to the
// token balance: positive for a deposit, negative otherwise.
func (r Record) Signed() (Quantity, error) {
	q, err := ParseQuantity(r.Amount)
	if err != nil {
		return Quantity{}, &RecordError{Line: r.Line, Field: ColAmount, Err: err}
	}
	if r.Type == Deposit {
		return q, nil
	}
	return q.Neg(), nil
}
