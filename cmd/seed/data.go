package main

import "github.com/forefront/clientplus/internal/core/domain"

var seedDomains = []string{
	"Consulting",
	"Marketing",
	"Community",
	"Academy",
	"Business Development",
}

type seedSubdomain struct {
	Domain         string
	Name           string
	LeadConsultant string
}

var seedSubdomains = []seedSubdomain{
	{"Consulting", "AB&Associates", "youssef"},
	{"Consulting", "Cyber Talents", "reem"},
	{"Consulting", "Ecology", "youssef"},
	{"Consulting", "ElAbd", "momen"},
	{"Consulting", "ENGAGE", "momen"},
	{"Consulting", "HOFT Academy", "islam"},
	{"Consulting", "Lemon Spaces (R)", "momen"},
	{"Consulting", "Raya Trade", "magdy"},
	{"Consulting", "TBC", "islam"},
	{"Consulting", "Wander", "galal"},
	{"Consulting", "UAFL", "islam"},
	{"Consulting", "Expanders", "momen"},
	{"Marketing", "Forefront", "raneem"},
	{"Marketing", "Islam PB", "raneem"},
	{"Marketing", "Team Internal", "raneem"},
	{"Marketing", "External Client", "raneem"},
	{"Community", "Strategy Community", "raneem"},
	{"Community", "Consulting Community", "raneem"},
	{"Academy", "LMS", "galal"},
	{"Academy", "Content", "galal"},
	{"Academy", "Marketing", "galal"},
	{"Business Development", "Potential Client Meeting", "magdy"},
	{"Business Development", "Partner Meeting", "magdy"},
	{"Business Development", "Back office Work", "magdy"},
}

// Every subdomain starts with the same baseline scope set; consultants add
// more through the UI as engagements evolve.
var seedScopeNames = []string{
	"Strategic Planning",
	"Business Analysis",
	"Client Meeting",
	"Deliverable Development",
}

type seedUser struct {
	Username string
	Email    string
	Role     string
}

var seedUsers = []seedUser{
	{"islam", "islam.saddany@forefront.consulting", domain.RoleSuperUser},
	{"youssef", "youssef.moataz@forefront.consulting", domain.RoleConsultant},
	{"momen", "momen.zaki@forefront.consulting", domain.RoleConsultant},
	{"aley", "aley.mahmoud@forefront.consulting", domain.RoleSuperUser},
	{"marwa", "marwa.abdelazeem@forefront.consulting", domain.RoleSupporting},
	{"reem", "reem.elbarbary@forefront.consulting", domain.RoleSupporting},
	{"magdy", "mohamed.magdy@forefront.consulting", domain.RoleConsultant},
	{"galal", "ahmed.galal@forefront.consulting", domain.RoleConsultant},
}

var seedClients = []domain.Client{
	{Name: "AB&Associates", Type: domain.ClientTypeProject, Status: domain.ClientStatusActive, Activity: domain.ActivityTypeClient},
	{Name: "Abdel Latif Jameel", Type: domain.ClientTypeProject, Status: domain.ClientStatusEnded, Activity: domain.ActivityTypeClient},
	{Name: "AlAmal AlSharif", Type: domain.ClientTypeProject, Status: domain.ClientStatusEnded, Activity: domain.ActivityTypeClient},
	{Name: "AMAN Holding", Type: domain.ClientTypeProject, Status: domain.ClientStatusEnded, Activity: domain.ActivityTypeClient},
	{Name: "Bosta", Type: domain.ClientTypeProject, Status: domain.ClientStatusEnded, Activity: domain.ActivityTypeClient},
	{Name: "Chefaa", Type: domain.ClientTypeProject, Status: domain.ClientStatusEnded, Activity: domain.ActivityTypeClient},
	{Name: "Code Club", Type: domain.ClientTypeProject, Status: domain.ClientStatusEnded, Activity: domain.ActivityTypeClient},
	{Name: "Cyber Talents", Type: domain.ClientTypeProject, Status: domain.ClientStatusActive, Activity: domain.ActivityTypeClient},
	{Name: "Ecology", Type: domain.ClientTypeRetainer, Status: domain.ClientStatusActive, Activity: domain.ActivityTypeClient},
	{Name: "ElAbd", Type: domain.ClientTypeRetainer, Status: domain.ClientStatusActive, Activity: domain.ActivityTypeClient},
	{Name: "ENGAGE", Type: domain.ClientTypeProject, Status: domain.ClientStatusActive, Activity: domain.ActivityTypeClient},
	{Name: "FF Ex-Meeting", Type: domain.ClientTypeInternal, Status: domain.ClientStatusActive, Activity: "FFNT"},
	{Name: "FF In-Meeting", Type: domain.ClientTypeInternal, Status: domain.ClientStatusActive, Activity: "FFNT"},
	{Name: "Forefront", Type: domain.ClientTypeInternal, Status: domain.ClientStatusActive, Activity: "FFNT"},
	{Name: "HOFT Academy", Type: domain.ClientTypeProject, Status: domain.ClientStatusActive, Activity: domain.ActivityTypeClient},
	{Name: "Lemon Spaces (R)", Type: domain.ClientTypeRetainer, Status: domain.ClientStatusActive, Activity: domain.ActivityTypeClient},
	{Name: "Raya Trade", Type: domain.ClientTypeRetainer, Status: domain.ClientStatusActive, Activity: domain.ActivityTypeClient},
	{Name: "TBC", Type: domain.ClientTypeProject, Status: domain.ClientStatusActive, Activity: domain.ActivityTypeClient},
	{Name: "Wander", Type: domain.ClientTypeRetainer, Status: domain.ClientStatusActive, Activity: domain.ActivityTypeClient},
}

type seedPermission struct {
	Username string
	Page     string
}

var seedPermissions = []seedPermission{
	{"aley", "Data Entry"},
	{"aley", "Consultant Toolkit"},
	{"aley", "Settings"},
	{"islam", "Data Entry"},
	{"islam", "Consultant Toolkit"},
	{"islam", "Settings"},
}
