package shell

import (
	"strings"

	"github.com/AntonStoeckl/bookface-go/library/shared/core"
)

// BookRecord is the persisted shape of a Book.
//
// Pointer fields distinguish a missing JSON property from its zero value.
// Quantity is the number of copies owned, available or on loan.
// ReturnDate is the earliest due date among Loans, or "" when IsLoaned is false.
type BookRecord struct {
	Title      *string      `json:"title"`
	Author     *string      `json:"author"`
	Quantity   *int         `json:"quantity"`
	IsLoaned   *bool        `json:"isLoaned,omitempty"`
	ReturnDate *string      `json:"returnDate,omitempty"`
	Loans      []LoanRecord `json:"loans,omitempty"`
}

// LoanRecord is the persisted shape of one loan edge.
type LoanRecord struct {
	Loanee     *string `json:"loanee"`
	ReturnDate *string `json:"returnDate"`
}

// PersonLookup resolves a loanee name to a loaded Person.
type PersonLookup func(name core.Name) (core.Person, bool)

// BookRecordFrom converts a Book to its BookRecord.
func BookRecordFrom(book core.Book) BookRecord {
	title := book.Title().String()
	author := book.Author().String()
	quantity := book.TotalCopies()
	isLoaned := book.IsLoaned()
	returnDate := ""

	if next, ok := book.NextReturnDate(); ok {
		returnDate = next.String()
	}

	var loans []LoanRecord
	for _, loan := range book.Loans() {
		loanee := loan.LoaneeName().String()
		loanReturnDate := loan.ReturnDate().String()
		loans = append(loans, LoanRecord{Loanee: &loanee, ReturnDate: &loanReturnDate})
	}

	return BookRecord{
		Title:      &title,
		Author:     &author,
		Quantity:   &quantity,
		IsLoaned:   &isLoaned,
		ReturnDate: &returnDate,
		Loans:      loans,
	}
}

// BookFrom validates a BookRecord and converts it to a Book.
//
// The checks run in a fixed order and the first violation is returned as a core.IllegalValueError:
// title, author, quantity (at least one copy), loan flag with its return date, and finally the loans.
// A missing isLoaned property counts as false.
func BookFrom(record BookRecord, lookup PersonLookup) (core.Book, error) {
	if record.Title == nil {
		return core.Book{}, missingField(core.FieldTitle)
	}

	title, err := core.BuildTitle(*record.Title)
	if err != nil {
		return core.Book{}, err
	}

	if record.Author == nil {
		return core.Book{}, missingField(core.FieldAuthor)
	}

	author, err := core.BuildAuthor(*record.Author)
	if err != nil {
		return core.Book{}, err
	}

	if record.Quantity == nil {
		return core.Book{}, missingField(core.FieldQuantity)
	}

	if *record.Quantity < 1 {
		return core.Book{}, core.IllegalValue(core.FieldQuantity, "a book must own at least one copy")
	}

	totalCopies, err := core.BuildQuantity(*record.Quantity)
	if err != nil {
		return core.Book{}, err
	}

	isLoaned := record.IsLoaned != nil && *record.IsLoaned

	returnDate, err := checkLoanFlag(isLoaned, record.ReturnDate)
	if err != nil {
		return core.Book{}, err
	}

	loans, err := loansFrom(isLoaned, record.Loans, lookup)
	if err != nil {
		return core.Book{}, err
	}

	if err := checkEarliestReturnDate(returnDate, loans); err != nil {
		return core.Book{}, err
	}

	return core.ReconstituteBook(title, author, totalCopies, loans...)
}

func checkLoanFlag(isLoaned bool, returnDate *string) (core.ReturnDate, error) {
	blank := returnDate == nil || strings.TrimSpace(*returnDate) == ""

	if !isLoaned {
		if !blank {
			return core.ReturnDate{}, core.IllegalValue(core.FieldReturnDate, "a book that is not loaned must not have a return date")
		}

		return core.ReturnDate{}, nil
	}

	if blank {
		return core.ReturnDate{}, core.IllegalValue(core.FieldReturnDate, "a loaned book must have a return date")
	}

	return core.ParseReturnDate(*returnDate)
}

// checkEarliestReturnDate requires the book's return date to be the earliest due date of its loans.
func checkEarliestReturnDate(returnDate core.ReturnDate, loans []core.Loan) error {
	if len(loans) == 0 {
		return nil
	}

	earliest := loans[0].ReturnDate()
	for _, loan := range loans[1:] {
		if loan.ReturnDate().Before(earliest) {
			earliest = loan.ReturnDate()
		}
	}

	if !returnDate.Equals(earliest) {
		return core.IllegalValue(
			core.FieldReturnDate,
			"return date "+returnDate.String()+" is not the earliest loan due date "+earliest.String(),
		)
	}

	return nil
}

func loansFrom(isLoaned bool, records []LoanRecord, lookup PersonLookup) ([]core.Loan, error) {
	if isLoaned && len(records) == 0 {
		return nil, core.IllegalValue(core.FieldLoans, "a loaned book must list its loans")
	}

	if !isLoaned && len(records) > 0 {
		return nil, core.IllegalValue(core.FieldLoans, "a book that is not loaned must not list loans")
	}

	loans := make([]core.Loan, 0, len(records))
	seen := make(map[string]struct{}, len(records))

	for _, record := range records {
		if record.Loanee == nil {
			return nil, core.IllegalValue(core.FieldLoans, "loanee is missing")
		}

		name, err := core.BuildName(*record.Loanee)
		if err != nil {
			return nil, core.IllegalValue(core.FieldLoans, "loanee: "+core.NameConstraints)
		}

		if _, ok := seen[name.String()]; ok {
			return nil, core.IllegalValue(core.FieldLoans, name.String()+" holds more than one copy")
		}

		seen[name.String()] = struct{}{}

		loanee, ok := lookup(name)
		if !ok {
			return nil, core.IllegalValue(core.FieldLoans, "unknown loanee "+name.String())
		}

		if record.ReturnDate == nil {
			return nil, core.IllegalValue(core.FieldLoans, "return date of the loan to "+name.String()+" is missing")
		}

		returnDate, err := core.ParseReturnDate(*record.ReturnDate)
		if err != nil {
			return nil, core.IllegalValue(core.FieldLoans, core.ReturnDateConstraints)
		}

		loans = append(loans, core.BuildLoan(loanee, returnDate))
	}

	return loans, nil
}

func missingField(field string) error {
	return core.IllegalValue(field, field+" field is missing")
}
