package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gicledger/ledger/internal/importer"
	"github.com/gicledger/ledger/internal/model"
	"github.com/gicledger/ledger/internal/render"
)

type batchOptions struct {
	transactions []string
	rules        []string
	format       string
	statements   []string
	output       string
}

func newBatchCommand(gf *globalFlags) *cobra.Command {
	var opts batchOptions

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Load transaction and rule files, then print statements",
		Long: `Load interest rules and then transactions from files into a fresh ledger
and print the requested statements. Rejected rows are reported on stderr and
do not stop the rest of the batch; the command fails if any row was rejected.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(cmd, gf, opts)
		},
	}

	cmd.Flags().StringArrayVar(&opts.transactions, "transactions", nil, "transaction file (repeatable)")
	cmd.Flags().StringArrayVar(&opts.rules, "rules", nil, "interest rule file (repeatable)")
	cmd.Flags().StringVar(&opts.format, "format", "", "input format: csv or text (default: from file extension)")
	cmd.Flags().StringArrayVar(&opts.statements, "statement", nil, "statement to print as ACCOUNT:YYYYMM (repeatable)")
	cmd.Flags().StringVar(&opts.output, "output", "table", "statement output: table or csv")

	return cmd
}

func runBatch(cmd *cobra.Command, gf *globalFlags, opts batchOptions) error {
	if opts.output != "table" && opts.output != "csv" {
		return fmt.Errorf("unknown output %q (want table or csv)", opts.output)
	}
	requests, err := parseStatementRequests(opts.statements)
	if err != nil {
		return err
	}

	_, logger, l, err := gf.setup(cmd)
	if err != nil {
		return err
	}

	reg := importer.DefaultRegistry()
	rejected := 0
	report := func(path string, errs []importer.RowError) {
		for _, e := range errs {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", path, e)
		}
		rejected += len(errs)
	}

	for _, path := range opts.rules {
		rows, parseErrs, err := reg.ReadRulesFile(path, opts.format)
		if err != nil {
			return err
		}
		report(path, parseErrs)
		n, applyErrs := importer.ApplyRules(l, rows)
		report(path, applyErrs)
		logger.Info("rules loaded", "file", path, "applied", n)
	}

	for _, path := range opts.transactions {
		rows, parseErrs, err := reg.ReadTransactionsFile(path, opts.format)
		if err != nil {
			return err
		}
		report(path, parseErrs)
		applied, applyErrs := importer.ApplyTransactions(l, rows)
		report(path, applyErrs)
		logger.Info("transactions loaded", "file", path, "applied", len(applied))
	}

	stmts := make([]model.Statement, 0, len(requests))
	for _, req := range requests {
		stmt, err := l.Statement(req.accountID, req.yearMonth)
		if err != nil {
			return err
		}
		stmts = append(stmts, stmt)
	}

	out := cmd.OutOrStdout()
	if opts.output == "csv" {
		if err := render.WriteStatementCSV(out, stmts...); err != nil {
			return err
		}
	} else {
		for i, stmt := range stmts {
			if i > 0 {
				fmt.Fprintln(out)
			}
			if err := render.WriteStatementTable(out, stmt); err != nil {
				return err
			}
		}
	}

	if rejected > 0 {
		return fmt.Errorf("%d row(s) rejected", rejected)
	}
	return nil
}

type statementRequest struct {
	accountID string
	yearMonth string
}

func parseStatementRequests(values []string) ([]statementRequest, error) {
	var reqs []statementRequest
	for _, s := range values {
		acct, ym, ok := strings.Cut(s, ":")
		if !ok || acct == "" || ym == "" {
			return nil, fmt.Errorf("invalid --statement %q (want ACCOUNT:YYYYMM)", s)
		}
		reqs = append(reqs, statementRequest{accountID: acct, yearMonth: ym})
	}
	return reqs, nil
}
