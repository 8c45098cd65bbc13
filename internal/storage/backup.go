package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"strings"
)

// backupTables are the entity tables included in a backup, in export
// order. Transfers and app_config are local state and stay out, matching
// the backup format this store has always produced.
var backupTables = []string{
	"transactions",
	"subscriptions",
	"loans",
	"credit_purchases",
	"savings_goals",
	"bank_accounts",
	"budgets",
}

// backupColumns allowlists the columns accepted on import, per table.
// Imported row keys are interpolated into SQL as column names, so only
// known identifiers may pass.
var backupColumns = map[string]map[string]bool{
	"transactions":     cols("id", "kind", "category", "amount", "description", "timestamp"),
	"subscriptions":    cols("id", "name", "monthly_amount", "billing_day", "active"),
	"loans":            cols("id", "lender", "principal", "amount_paid", "monthly_installment", "due_day", "start_date", "active"),
	"credit_purchases": cols("id", "description", "lender", "principal", "term_months", "monthly_installment", "months_paid", "purchase_date", "monthly_rate", "paid"),
	"savings_goals":    cols("id", "name", "target_amount", "current_amount", "start_date", "completed"),
	"bank_accounts":    cols("id", "bank_name", "account_type", "balance", "credit_limit", "created_date", "active"),
	"budgets":          cols("id", "category", "spending_limit", "month", "year"),
}

func cols(names ...string) map[string]bool {
	m := make(map[string]bool, len(names))
	for _, n := range names {
		m[n] = true
	}
	return m
}

// ExportJSON serializes the full store as one JSON object whose keys are
// the table names and whose values are arrays of row objects keyed by
// column name.
func (r *Repository) ExportJSON(ctx context.Context) ([]byte, error) {
	dump := make(map[string][]map[string]any, len(backupTables))

	for _, table := range backupTables {
		rows, err := r.exportTable(ctx, table)
		if err != nil {
			return nil, fmt.Errorf("export table %s: %w", table, err)
		}
		dump[table] = rows
	}

	data, err := json.MarshalIndent(dump, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal backup: %w", err)
	}

	slog.InfoContext(ctx, "Store exported", "tables", len(backupTables), "bytes", len(data))
	return data, nil
}

func (r *Repository) exportTable(ctx context.Context, table string) ([]map[string]any, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT * FROM "+table)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	out := []map[string]any{}
	for rows.Next() {
		values := make([]any, len(columns))
		targets := make([]any, len(columns))
		for i := range values {
			targets[i] = &values[i]
		}
		if err := rows.Scan(targets...); err != nil {
			return nil, err
		}
		row := make(map[string]any, len(columns))
		for i, col := range columns {
			if b, ok := values[i].([]byte); ok {
				row[col] = string(b)
			} else {
				row[col] = values[i]
			}
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// ImportJSON restores rows from a backup produced by ExportJSON. Rows are
// upserted one at a time; an unknown table, an unknown column, or a row
// the database rejects is skipped individually and never aborts the rest
// of the import. Returns the number of imported and skipped rows.
func (r *Repository) ImportJSON(ctx context.Context, data []byte) (imported, skipped int, err error) {
	var dump map[string][]map[string]any
	if err := json.Unmarshal(data, &dump); err != nil {
		return 0, 0, fmt.Errorf("parse backup: %w", err)
	}

	for table, tableRows := range dump {
		allowed, ok := backupColumns[table]
		if !ok {
			slog.WarnContext(ctx, "Skipping unknown table in backup", "table", table, "rows", len(tableRows))
			skipped += len(tableRows)
			continue
		}

		for _, row := range tableRows {
			if err := r.importRow(ctx, table, allowed, row); err != nil {
				slog.WarnContext(ctx, "Skipping backup row", "table", table, "error", err)
				skipped++
				continue
			}
			imported++
		}
	}

	slog.InfoContext(ctx, "Store imported", "imported", imported, "skipped", skipped)
	return imported, skipped, nil
}

func (r *Repository) importRow(ctx context.Context, table string, allowed map[string]bool, row map[string]any) error {
	if len(row) == 0 {
		return fmt.Errorf("empty row")
	}

	columns := make([]string, 0, len(row))
	for col := range row {
		if !allowed[col] {
			return fmt.Errorf("unknown column %q", col)
		}
		columns = append(columns, col)
	}
	sort.Strings(columns)

	args := make([]any, len(columns))
	placeholders := make([]string, len(columns))
	for i, col := range columns {
		args[i] = row[col]
		placeholders[i] = "?"
	}

	query := fmt.Sprintf("INSERT OR REPLACE INTO %s (%s) VALUES (%s)",
		table, strings.Join(columns, ", "), strings.Join(placeholders, ", "))
	_, err := r.db.ExecContext(ctx, query, args...)
	return err
}
