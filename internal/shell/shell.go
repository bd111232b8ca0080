// Package shell implements the interactive menu for recording transactions,
// defining interest rules and printing statements.
package shell

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/gicledger/ledger/internal/importer"
	"github.com/gicledger/ledger/internal/ledger"
	"github.com/gicledger/ledger/internal/render"
)

const (
	txnPrompt       = "Please enter transaction details in <Date> <Account> <Type> <Amount> format\n(or enter blank to go back to main menu):\n> "
	rulePrompt      = "Please enter interest rules details in <Date> <RuleId> <Rate in %> format\n(or enter blank to go back to main menu):\n> "
	statementPrompt = "Please enter account and month to generate the statement <Account> <Year><Month>\n(or enter blank to go back to main menu):\n> "
	menuOptions     = "[T] Input transactions\n[I] Define interest rules\n[P] Print statement\n[Q] Quit\n> "
)

// Shell drives a Ledger from line-oriented input.
type Shell struct {
	ledger   *ledger.Ledger
	in       *bufio.Scanner
	out      io.Writer
	bankName string
	log      *slog.Logger
}

// New creates a Shell reading commands from in and writing to out.
func New(l *ledger.Ledger, in io.Reader, out io.Writer, bankName string, logger *slog.Logger) *Shell {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Shell{
		ledger:   l,
		in:       bufio.NewScanner(in),
		out:      out,
		bankName: bankName,
		log:      logger,
	}
}

// Run shows the menu until the user quits or input ends. Entry errors are
// printed and never end the session.
func (s *Shell) Run() error {
	greeting := fmt.Sprintf("Welcome to %s! What would you like to do?\n", s.bankName)
	for {
		s.printf("%s%s", greeting, menuOptions)
		greeting = "Is there anything else you'd like to do?\n"

		choice, ok := s.readLine()
		if !ok {
			s.goodbye()
			return s.in.Err()
		}

		switch strings.ToUpper(choice) {
		case "T":
			s.loop(txnPrompt, s.recordTransaction)
		case "I":
			s.loop(rulePrompt, s.defineRule)
		case "P":
			s.loop(statementPrompt, s.printStatement)
		case "Q":
			s.goodbye()
			return nil
		default:
			s.printf("Invalid option, please try again.\n\n")
		}
	}
}

// loop prompts repeatedly until a blank line or end of input.
func (s *Shell) loop(prompt string, handle func(line string) error) {
	for {
		s.printf("\n%s", prompt)
		line, ok := s.readLine()
		if !ok || line == "" {
			s.printf("\n")
			return
		}
		if err := handle(line); err != nil {
			s.log.Info("entry rejected", "input", line, "err", err)
			s.printf("Error: %v\n", err)
		}
	}
}

func (s *Shell) recordTransaction(line string) error {
	row, err := importer.ParseTransactionLine(line)
	if err != nil {
		return err
	}
	amount, err := ledger.ParseAmount(row.Amount)
	if err != nil {
		return err
	}
	if _, err := s.ledger.AddTransaction(row.Date, row.AccountID, row.Kind, amount); err != nil {
		return err
	}

	acct, err := s.ledger.Account(row.AccountID)
	if err != nil {
		return err
	}
	s.printf("\n")
	return render.WriteAccountTable(s.out, acct.ID, acct.Transactions)
}

func (s *Shell) defineRule(line string) error {
	row, err := importer.ParseRuleLine(line)
	if err != nil {
		return err
	}
	rate, err := ledger.ParseRate(row.Rate)
	if err != nil {
		return err
	}
	if err := s.ledger.AddInterestRule(row.Date, row.RuleID, rate); err != nil {
		return err
	}
	s.printf("\n")
	return render.WriteRulesTable(s.out, s.ledger.Rules())
}

func (s *Shell) printStatement(line string) error {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return fmt.Errorf("expected <Account> <Year><Month>, got %d fields", len(fields))
	}
	stmt, err := s.ledger.Statement(fields[0], fields[1])
	if err != nil {
		return err
	}
	s.printf("\n")
	return render.WriteStatementTable(s.out, stmt)
}

func (s *Shell) goodbye() {
	s.printf("\nThank you for banking with %s.\nHave a nice day!\n", s.bankName)
}

func (s *Shell) readLine() (string, bool) {
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

func (s *Shell) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}
