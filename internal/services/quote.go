package services

import (
	"fmt"
	"strconv"
	"strings"

	"edilmodern-erp/internal/models"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// ParseAmount interpreta un importo arrivato dal form. Qualsiasi valore non
// numerico (o vuoto) vale zero: il generatore documenti non solleva mai errori
// per input incompleti.
func ParseAmount(s string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero
	}
	return d
}

// ComputeTotals deriva IVA e totale dall'imponibile e dall'aliquota:
// taxAmount = subtotal × rate / 100, total = subtotal + taxAmount,
// arrotondati a due decimali.
func ComputeTotals(subtotal, taxRate string) (taxAmount, total decimal.Decimal) {
	sub := ParseAmount(subtotal)
	rate := ParseAmount(taxRate)
	taxAmount = sub.Mul(rate).Div(hundred).Round(2)
	total = sub.Add(taxAmount).Round(2)
	return taxAmount, total
}

// NextNumber calcola il numero progressivo del prossimo documento per l'anno:
// "{anno}/{progressivo a 3 cifre}". Il progressivo conta i preventivi il cui
// numero inizia con l'anno, quindi riparte da 001 a ogni anno nuovo senza
// alcuna operazione di reset esplicita. Il numero non viene riservato in modo
// atomico: con un solo titolare e un form sincrono non serve.
func NextNumber(existing []models.Quote, year int) string {
	prefix := strconv.Itoa(year)
	count := 0
	for _, q := range existing {
		if strings.HasPrefix(q.Number, prefix) {
			count++
		}
	}
	return fmt.Sprintf("%d/%03d", year, count+1)
}
