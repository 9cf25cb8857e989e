package services

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/farehaven/travelfront/internal/models"
)

// Exporter builds XLSX workbooks for back-office downloads.
type Exporter struct{}

// NewExporter creates a new exporter
func NewExporter() *Exporter {
	return &Exporter{}
}

// ExportPackages writes the full package list to a single-sheet workbook.
func (e *Exporter) ExportPackages(packages []*models.Package) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Packages"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	headers := []interface{}{
		"ID", "Slug", "Title", "Category", "Tags", "Price", "Currency",
		"Duration", "Display Order", "Published", "Updated",
	}
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	for i, pkg := range packages {
		price := ""
		if pkg.Price != nil {
			price = fmt.Sprintf("%.2f", *pkg.Price)
		}
		order := ""
		if pkg.DisplayOrder != nil {
			order = fmt.Sprintf("%d", *pkg.DisplayOrder)
		}
		row := []interface{}{
			pkg.ID, pkg.Slug, pkg.Title, pkg.Category, strings.Join(pkg.Tags, ", "),
			price, pkg.Currency, pkg.Duration, order, pkg.IsPublished,
			pkg.UpdatedAt.Format("2006-01-02 15:04"),
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	return f.WriteToBuffer()
}

// ExportEnquiries writes the enquiry list to a single-sheet workbook.
func (e *Exporter) ExportEnquiries(enquiries []*models.Enquiry) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Enquiries"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	headers := []interface{}{
		"ID", "Reference", "Name", "Email", "Phone", "Package", "Status", "Received",
	}
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	for i, enq := range enquiries {
		phone := ""
		if enq.Phone != nil {
			phone = *enq.Phone
		}
		pkgSlug := ""
		if enq.PackageSlug != nil {
			pkgSlug = *enq.PackageSlug
		}
		row := []interface{}{
			enq.ID, enq.Reference, enq.Name, enq.Email, phone, pkgSlug,
			string(enq.Status), enq.CreatedAt.Format("2006-01-02 15:04"),
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	return f.WriteToBuffer()
}
