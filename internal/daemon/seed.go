package daemon

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/fieldops/fieldops/internal/config"
	"github.com/fieldops/fieldops/internal/db/models"
)

// screenPerm is one row of the embedded RBAC matrix: the permission flags a
// role holds on a screen, in view/add/edit/delete order.
type screenPerm struct {
	screen string
	flags  [4]bool
}

var allScreens = []string{
	"Company",
	"Vendor / Contractor",
	"Technician",
	"Clients/Customer",
	"Work Type",
	"Job Type",
	"Region",
	"Shift",
	"Roles",
	"Settings",
	"Manage Job",
}

var full = [4]bool{true, true, true, true}
var viewOnly = [4]bool{true, false, false, false}

// rbacMatrix is the seeded permission set per role. The super-tenant role
// bypasses the guard entirely but is seeded with full permissions anyway so
// permission listings stay truthful.
var rbacMatrix = map[string]struct {
	name    string
	screens []screenPerm
}{
	models.RoleSuperAdmin: {
		name:    "Super Admin",
		screens: fullAccess(allScreens),
	},
	models.RoleCompanyAdmin: {
		name: "Company Admin",
		screens: append(fullAccess([]string{
			"Vendor / Contractor", "Technician", "Clients/Customer",
			"Work Type", "Job Type", "Region", "Shift", "Manage Job",
		}),
			screenPerm{"Roles", viewOnly},
			screenPerm{"Settings", viewOnly},
		),
	},
	models.RoleVendor: {
		name: "Vendor / Contractor",
		screens: []screenPerm{
			{"Technician", full},
			{"Manage Job", [4]bool{true, true, true, false}},
			{"Clients/Customer", viewOnly},
			{"Roles", viewOnly},
			{"Settings", viewOnly},
		},
	},
	models.RoleSupervisor: {
		name: "Supervisor / Dispatcher",
		screens: []screenPerm{
			{"Manage Job", [4]bool{true, true, true, false}},
			{"Technician", viewOnly},
			{"Clients/Customer", viewOnly},
			{"Roles", viewOnly},
			{"Settings", viewOnly},
		},
	},
	models.RoleTechnician: {
		name: "Technician",
		screens: []screenPerm{
			{"Manage Job", [4]bool{true, false, true, false}},
			{"Settings", viewOnly},
		},
	},
}

func fullAccess(screens []string) []screenPerm {
	perms := make([]screenPerm, 0, len(screens))
	for _, s := range screens {
		perms = append(perms, screenPerm{s, full})
	}

	return perms
}

// Seed populates screens, roles, the role-screen permission matrix, the
// super-admin account, reference locations and the default master
// vocabularies. Every step is idempotent.
func Seed(cfg *config.Config, db *gorm.DB) error {
	screens, err := seedScreens(db)
	if err != nil {
		return err
	}

	roles, err := seedRoles(db, screens)
	if err != nil {
		return err
	}

	if err = seedSuperAdmin(cfg, db, roles[models.RoleSuperAdmin]); err != nil {
		return err
	}

	if err = seedLocations(db); err != nil {
		return err
	}

	return seedMasters(db)
}

func seedScreens(db *gorm.DB) (map[string]*models.Screen, error) {
	screens := make(map[string]*models.Screen, len(allScreens))

	for _, name := range allScreens {
		row := &models.Screen{Name: name}

		err := db.Where(models.Screen{Name: name}).FirstOrCreate(row).Error
		if err != nil {
			return nil, errors.Wrapf(err, "failed to seed screen %q", name)
		}

		screens[name] = row
	}

	return screens, nil
}

func seedRoles(db *gorm.DB, screens map[string]*models.Screen) (map[string]*models.Role, error) {
	roles := make(map[string]*models.Role, len(rbacMatrix))

	for slug, def := range rbacMatrix {
		role := &models.Role{Name: def.name, Slug: slug, Status: true}

		err := db.Where(models.Role{Slug: slug}).FirstOrCreate(role).Error
		if err != nil {
			return nil, errors.Wrapf(err, "failed to seed role %q", slug)
		}

		roles[slug] = role

		for _, sp := range def.screens {
			screen, ok := screens[sp.screen]
			if !ok {
				return nil, errors.Errorf("rbac matrix names unknown screen %q", sp.screen)
			}

			perm := &models.RoleScreenPermission{RoleID: role.ID, ScreenID: screen.ID}

			err = db.Where(models.RoleScreenPermission{RoleID: role.ID, ScreenID: screen.ID}).
				FirstOrCreate(perm).Error
			if err != nil {
				return nil, errors.Wrapf(err, "failed to seed permission %s/%s", slug, sp.screen)
			}

			perm.CanView = sp.flags[0]
			perm.CanAdd = sp.flags[1]
			perm.CanEdit = sp.flags[2]
			perm.CanDelete = sp.flags[3]

			if err = db.Save(perm).Error; err != nil {
				return nil, errors.Wrapf(err, "failed to update permission %s/%s", slug, sp.screen)
			}
		}
	}

	return roles, nil
}

func seedSuperAdmin(cfg *config.Config, db *gorm.DB, role *models.Role) error {
	email := strings.ToLower(strings.TrimSpace(cfg.Seed.SuperAdminEmail))
	if email == "" || cfg.Seed.SuperAdminPassword == "" {
		log.Warn().Msg("seed super admin skipped: credentials not configured")
		return nil
	}

	user := &models.User{
		Name:     "Super Admin",
		Email:    email,
		Password: models.HashPassword(cfg.Seed.SuperAdminPassword),
		RoleID:   role.ID,
		Status:   true,
	}

	err := db.Where(models.User{Email: email}).FirstOrCreate(user).Error
	if err != nil {
		return errors.Wrap(err, "failed to seed super admin")
	}

	// keep role and status current for an existing account
	user.RoleID = role.ID
	user.Status = true

	return errors.Wrap(db.Save(user).Error, "failed to update super admin")
}

func seedLocations(db *gorm.DB) error {
	india := &models.Country{ID: 91, Name: "India", Code: "IN", Status: true}

	err := db.Where(models.Country{ID: 91}).FirstOrCreate(india).Error
	if err != nil {
		return errors.Wrap(err, "failed to seed country")
	}

	states := []string{"Andhra Pradesh", "Tamil Nadu"}
	districts := map[string]string{
		"Chittoor": "Andhra Pradesh",
		"Chennai":  "Tamil Nadu",
	}
	pincodes := map[string]string{
		"517415": "Chittoor",
		"517501": "Chittoor",
		"600006": "Chennai",
	}

	stateRows := make(map[string]*models.State, len(states))

	for _, name := range states {
		row := &models.State{CountryID: india.ID, Name: name, Status: true}

		err = db.Where(models.State{CountryID: india.ID, Name: name}).FirstOrCreate(row).Error
		if err != nil {
			return errors.Wrapf(err, "failed to seed state %q", name)
		}

		stateRows[name] = row
	}

	districtRows := make(map[string]*models.District, len(districts))

	for name, stateName := range districts {
		state := stateRows[stateName]
		row := &models.District{CountryID: india.ID, StateID: &state.ID, Name: name, Status: true}

		err = db.Where(models.District{CountryID: india.ID, Name: name}).FirstOrCreate(row).Error
		if err != nil {
			return errors.Wrapf(err, "failed to seed district %q", name)
		}

		districtRows[name] = row
	}

	for pin, districtName := range pincodes {
		district := districtRows[districtName]
		row := &models.Pincode{
			CountryID:  india.ID,
			StateID:    district.StateID,
			DistrictID: &district.ID,
			Pincode:    pin,
		}

		err = db.Where(models.Pincode{CountryID: india.ID, Pincode: pin}).FirstOrCreate(row).Error
		if err != nil {
			return errors.Wrapf(err, "failed to seed pincode %q", pin)
		}
	}

	return nil
}

func seedMasters(db *gorm.DB) error {
	for _, name := range []string{"Business", "Individual"} {
		row := &models.BusinessType{Name: name, Status: true}

		err := db.Where(models.BusinessType{Name: name}).FirstOrCreate(row).Error
		if err != nil {
			return errors.Wrapf(err, "failed to seed business type %q", name)
		}
	}

	for _, title := range []string{"Free", "Paid"} {
		row := &models.SubscriptionType{Title: title, Status: true}

		err := db.Where(models.SubscriptionType{Title: title}).FirstOrCreate(row).Error
		if err != nil {
			return errors.Wrapf(err, "failed to seed subscription type %q", title)
		}
	}

	for _, name := range []string{"Phone Call", "Field Work"} {
		row := &models.NatureOfWork{Name: name, Status: true}

		err := db.Where(models.NatureOfWork{Name: name}).FirstOrCreate(row).Error
		if err != nil {
			return errors.Wrapf(err, "failed to seed nature of work %q", name)
		}
	}

	jobStatuses := []models.JobStatus{
		{Title: "Not Started", ColorCode: "#6B7280", Order: 1},
		{Title: "Assign Tech", ColorCode: "#3B82F6", Order: 2},
		{Title: "EnRoute", ColorCode: "#6366F1", Order: 3},
		{Title: "OnSite", ColorCode: "#0EA5E9", Order: 4},
		{Title: "OnHold", ColorCode: "#F59E0B", Order: 5},
		{Title: "Completed", ColorCode: "#10B981", Order: 7},
		{Title: "Cancelled", ColorCode: "#9CA3AF", Order: 8},
		{Title: "UnResolved", ColorCode: "#F97316", Order: 9},
		{Title: "Rejected", ColorCode: "#EF4444", Order: 99},
	}

	for _, js := range jobStatuses {
		row := &models.JobStatus{
			Title:     js.Title,
			ColorCode: js.ColorCode,
			Order:     js.Order,
			Status:    true,
		}

		err := db.Where(models.JobStatus{Title: js.Title}).FirstOrCreate(row).Error
		if err != nil {
			return errors.Wrapf(err, "failed to seed job status %q", js.Title)
		}

		// keep color and order current
		row.ColorCode = js.ColorCode
		row.Order = js.Order
		row.Status = true

		if err = db.Save(row).Error; err != nil {
			return errors.Wrapf(err, "failed to update job status %q", js.Title)
		}
	}

	return nil
}
