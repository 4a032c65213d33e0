package activities

import (
	"fmt"
	"strings"

	"github.com/hekimalabs/smas_backend/models/reports"
	"github.com/hekimalabs/smas_backend/utils"
)

// Message builders are pure string functions so the wording can be
// tested without a database or gateway. Customer-facing texts are in
// Swahili.

// subscriptionMessage words the expiry reminder by how many days are
// left. A branch past zero counts down to permanent deletion on day
// -7.
func subscriptionMessage(days int) string {
	switch {
	case days == 1:
		return "Huduma yako ya SMAS itakoma baada ya 24 hours. Tafadhali fanya malipo ili kuendelea kutumia huduma."
	case days > 1:
		return fmt.Sprintf("Huduma yako ya SMAS itakoma baada ya siku %d. Tafadhali fanya malipo ili kuendelea kutumia huduma.", days)
	case days == 0:
		return "Huduma yako ya SMAS imekoma leo. Tafadhali fanya malipo ili kuendelea kutumia huduma."
	default:
		remaining := 7 + days
		return fmt.Sprintf("Huduma yako ya SMAS imekoma. Taarifa za biashara yako zitafutwa kabisa baada ya siku %d. Tafadhali fanya malipo.", remaining)
	}
}

func debtReminderMessage(customerName string, branchName string, outstanding string) string {
	return fmt.Sprintf("Ndugu %s, unadaiwa TZS %s na %s. Tafadhali lipa deni lako. Asante.",
		customerName, outstanding, branchName)
}

// stockStatusMessage lists products at or below their reorder level,
// capped so the text fits in a few SMS segments.
func stockStatusMessage(productNames []string) string {
	if len(productNames) == 0 {
		return ""
	}

	const maxListed = 10
	listed := productNames
	suffix := ""
	if len(listed) > maxListed {
		listed = listed[:maxListed]
		suffix = fmt.Sprintf(" na nyingine %d", len(productNames)-maxListed)
	}

	return fmt.Sprintf("SMAS: bidhaa %d zimefikia kiwango cha kuagiza upya: %s%s.",
		len(productNames), strings.Join(listed, ", "), suffix)
}

func incompleteServiceMessage(count int64) string {
	if count == 0 {
		return ""
	}
	return fmt.Sprintf("SMAS: huduma %d bado hazijakamilika kwenye tawi lako. Tafadhali zikamilishe.", count)
}

func unpaidExpensePurchaseMessage(expenses int64, purchases int64) string {
	if expenses == 0 && purchases == 0 {
		return ""
	}
	return fmt.Sprintf("SMAS: matumizi %d na manunuzi %d hayajalipwa kwenye tawi lako.", expenses, purchases)
}

// unpaidDebtsMessage summarises both sides of the debt book: what
// customers owe the branch and what the branch owes its suppliers.
func unpaidDebtsMessage(debtorCount int, debtorTotal string, creditorCount int, creditorTotal string) string {
	if debtorCount == 0 && creditorCount == 0 {
		return ""
	}

	parts := make([]string, 0, 2)
	if debtorCount > 0 {
		parts = append(parts, fmt.Sprintf("madeni %d yenye jumla ya TZS %s hayajalipwa na wateja wako", debtorCount, debtorTotal))
	}
	if creditorCount > 0 {
		parts = append(parts, fmt.Sprintf("unadaiwa madeni %d yenye jumla ya TZS %s", creditorCount, creditorTotal))
	}
	return "SMAS: " + strings.Join(parts, "; ") + "."
}

// reportMessage renders an income statement as a short SMS. The title
// names the period, e.g. "Ripoti ya siku".
func reportMessage(title string, branchName string, statement *reports.IncomeStatement) string {
	return fmt.Sprintf("%s - %s: Mapato TZS %s, Gharama za mauzo TZS %s, Faida TZS %s, Matumizi TZS %s, Faida halisi TZS %s.",
		title, branchName,
		utils.FormatAmount(statement.Revenue),
		utils.FormatAmount(statement.CostOfGoods),
		utils.FormatAmount(statement.GrossProfit),
		utils.FormatAmount(statement.Expenses),
		utils.FormatAmount(statement.NetIncome))
}
