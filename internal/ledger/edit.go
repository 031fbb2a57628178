package ledger

import (
	"strconv"
	"strings"

	"github.com/cofrinho/backend/internal/categories"
)

// Fields is the form-level representation of one item's editable
// values. Numeric values stay strings because they travel to and from
// user input; they are validated on commit exactly like on add. An
// installment's monthly value is deliberately absent: it is always
// recomputed from TotalAmount and Count.
type Fields struct {
	Name        string
	Amount      string // income and expenses
	TotalAmount string // installments
	Count       string // installments
	Category    string // expenses and installments
}

// editSession tracks the single item that may be in edit at a time.
type editSession struct {
	itemType ItemType
	index    int
}

// StartEdit captures a snapshot of the item at index in the given
// sequence and marks it as being edited. At most one item can be in
// edit; starting a new edit replaces the previous session. An
// out-of-range index is rejected with ErrIndexOutOfRange.
func (l *Ledger) StartEdit(itemType ItemType, index int) (Fields, error) {
	fields, err := l.snapshot(itemType, index)
	if err != nil {
		return Fields{}, err
	}

	l.edit = &editSession{itemType: itemType, index: index}
	return fields, nil
}

// Editing reports the sequence and index of the item currently in
// edit, if any.
func (l *Ledger) Editing() (ItemType, int, bool) {
	if l.edit == nil {
		return "", 0, false
	}
	return l.edit.itemType, l.edit.index, true
}

// CancelEdit drops the edit session. It is idempotent.
func (l *Ledger) CancelEdit() {
	l.edit = nil
}

// CommitEdit validates the edited fields and writes the rebuilt item
// back into the slot captured at edit start.
//
// Validation failures leave both the ledger and the edit session
// untouched so the user can correct the input and retry. When the
// captured index is no longer within bounds (the item was removed
// while the edit was open) the write-back is skipped and the session
// cleared; the return value reports whether state actually changed.
func (l *Ledger) CommitEdit(edited Fields) (bool, error) {
	if l.edit == nil {
		return false, ErrNoActiveEdit
	}

	item, err := l.buildItem(l.edit.itemType, edited)
	if err != nil {
		return false, err
	}

	changed := l.writeBack(l.edit.itemType, l.edit.index, item)
	l.edit = nil
	return changed, nil
}

func (l *Ledger) snapshot(itemType ItemType, index int) (Fields, error) {
	switch itemType {
	case TypeIncome:
		if index < 0 || index >= len(l.incomes) {
			return Fields{}, ErrIndexOutOfRange
		}
		item := l.incomes[index]
		return Fields{Name: item.Name, Amount: item.Amount.String()}, nil
	case TypeMonthlyExpense, TypeAnnualExpense:
		seq := l.monthlyExpenses
		if itemType == TypeAnnualExpense {
			seq = l.annualExpenses
		}
		if index < 0 || index >= len(seq) {
			return Fields{}, ErrIndexOutOfRange
		}
		item := seq[index]
		return Fields{Name: item.Name, Amount: item.Amount.String(), Category: string(item.Category)}, nil
	case TypeInstallment:
		if index < 0 || index >= len(l.installments) {
			return Fields{}, ErrIndexOutOfRange
		}
		item := l.installments[index]
		return Fields{
			Name:        item.Name,
			TotalAmount: item.TotalAmount.String(),
			Count:       strconv.Itoa(item.InstallmentsCount),
			Category:    string(item.Category),
		}, nil
	}
	return Fields{}, ErrIndexOutOfRange
}

// buildItem rebuilds a full item from edited fields, applying the same
// validation as the add operations.
func (l *Ledger) buildItem(itemType ItemType, edited Fields) (any, error) {
	name := strings.TrimSpace(edited.Name)
	if name == "" {
		return nil, ErrEmptyName
	}

	switch itemType {
	case TypeIncome:
		amount, err := parseAmount(edited.Amount)
		if err != nil {
			return nil, err
		}
		return IncomeItem{Name: name, Amount: amount}, nil
	case TypeMonthlyExpense, TypeAnnualExpense:
		amount, err := parseAmount(edited.Amount)
		if err != nil {
			return nil, err
		}
		return ExpenseItem{Name: name, Amount: amount, Category: categories.Normalize(edited.Category)}, nil
	case TypeInstallment:
		total, err := parseAmount(edited.TotalAmount)
		if err != nil {
			return nil, err
		}
		count, err := parseCount(edited.Count)
		if err != nil {
			return nil, err
		}
		return InstallmentItem{
			Name:              name,
			TotalAmount:       total,
			InstallmentsCount: count,
			InstallmentValue:  installmentValue(total, count),
			Category:          categories.Normalize(edited.Category),
		}, nil
	}
	return nil, ErrNoActiveEdit
}

// writeBack stores the rebuilt item if the captured index is still
// valid for its sequence.
func (l *Ledger) writeBack(itemType ItemType, index int, item any) bool {
	switch itemType {
	case TypeIncome:
		if index < 0 || index >= len(l.incomes) {
			return false
		}
		l.incomes[index] = item.(IncomeItem)
	case TypeMonthlyExpense:
		if index < 0 || index >= len(l.monthlyExpenses) {
			return false
		}
		l.monthlyExpenses[index] = item.(ExpenseItem)
	case TypeAnnualExpense:
		if index < 0 || index >= len(l.annualExpenses) {
			return false
		}
		l.annualExpenses[index] = item.(ExpenseItem)
	case TypeInstallment:
		if index < 0 || index >= len(l.installments) {
			return false
		}
		l.installments[index] = item.(InstallmentItem)
	default:
		return false
	}
	return true
}
