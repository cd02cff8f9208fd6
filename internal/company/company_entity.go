package company

import (
	"staffcore/internal/tenant"
)

// Company adalah root tenant: definisinya tinggal di internal/tenant
// (pembawa context) dan di-alias di sini supaya API paket ini tetap sama.
type Company = tenant.Company
