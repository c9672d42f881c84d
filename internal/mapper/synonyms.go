package mapper

import (
	"regexp"

	"github.com/sells-group/lead-prioritizer/internal/model"
)

// defaultSynonyms lists the header spellings accepted as exact matches for each
// canonical field. Matching is case-insensitive on the trimmed header.
var defaultSynonyms = map[string][]string{
	model.FieldName: {
		"name", "full_name", "fullname", "contact_name", "lead_name",
		"person", "first_name", "last_name", "full name", "contact name",
		"lead name", "person name", "individual", "prospect_name",
		"prospect name", "client_name", "client name", "customer_name",
		"customer name", "firstname", "lastname", "fname", "lname",
	},
	model.FieldEmail: {
		"email", "email_address", "contact_email", "e_mail",
		"mail", "email address", "e-mail", "contact email",
		"e mail", "electronic_mail", "electronic mail", "email_addr",
		"email addr", "mailbox", "mail_address", "mail address",
		"contact_mail", "contact mail", "business_email", "business email",
	},
	model.FieldCompany: {
		"company", "company_name", "organization", "business",
		"firm", "company name", "org", "corporation", "enterprise",
		"employer", "workplace", "business_name", "business name",
		"org_name", "org name", "organization_name", "organization name",
		"client_company", "client company", "account", "account_name",
	},
	model.FieldJobTitle: {
		"job_title", "title", "position", "role", "job",
		"designation", "job title", "job_role", "work_title",
		"work title", "position_title", "position title", "post",
		"occupation", "function", "job_function", "job function",
		"work_role", "work role", "professional_title", "professional title",
	},
	model.FieldCompanySize: {
		"company_size", "size", "employees", "team_size",
		"staff_count", "company size", "employee_count", "headcount",
		"staff_size", "staff size", "workforce", "team_count",
		"team count", "personnel", "staff", "employee_total",
		"employee total", "total_employees", "total employees", "emp_count",
	},
}

// defaultPatterns are the fuzzy fallbacks per field, in priority order. They
// are matched unanchored against the lower-cased header.
var defaultPatterns = map[string][]*regexp.Regexp{
	model.FieldName: {
		regexp.MustCompile(`name`),
		regexp.MustCompile(`person`),
		regexp.MustCompile(`contact`),
	},
	model.FieldEmail: {
		regexp.MustCompile(`email`),
		regexp.MustCompile(`mail`),
		regexp.MustCompile(`@`),
	},
	model.FieldCompany: {
		regexp.MustCompile(`company`),
		regexp.MustCompile(`org`),
		regexp.MustCompile(`business`),
		regexp.MustCompile(`firm`),
	},
	model.FieldJobTitle: {
		regexp.MustCompile(`title`),
		regexp.MustCompile(`position`),
		regexp.MustCompile(`role`),
		regexp.MustCompile(`job`),
	},
	model.FieldCompanySize: {
		regexp.MustCompile(`size`),
		regexp.MustCompile(`employee`),
		regexp.MustCompile(`staff`),
		regexp.MustCompile(`team`),
	},
}
