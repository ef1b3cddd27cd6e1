package db

import (
	"fmt"

	"gorm.io/gorm"
)

var migrationStatements = []string{
	`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	`CREATE EXTENSION IF NOT EXISTS "pgcrypto";`,
	`DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'project_state') THEN
			CREATE TYPE project_state AS ENUM ('prospective', 'programmed', 'funded', 'commenced', 'under_construction', 'completed');
		END IF;
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'user_role') THEN
			CREATE TYPE user_role AS ENUM ('RICD_STAFF', 'RICD_MANAGER', 'COUNCIL_USER', 'COUNCIL_MANAGER');
		END IF;
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'review_status') THEN
			CREATE TYPE review_status AS ENUM ('pending', 'accepted', 'rejected', 'needs_more_info');
		END IF;
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'manager_decision') THEN
			CREATE TYPE manager_decision AS ENUM ('pending', 'approved', 'rejected');
		END IF;
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'agreement_type') THEN
			CREATE TYPE agreement_type AS ENUM ('funding_schedule', 'frpf_agreement', 'ifrpf_agreement', 'rcpf_agreement');
		END IF;
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'report_type') THEN
			CREATE TYPE report_type AS ENUM ('construction', 'land');
		END IF;
	END
	$$;`,
	`CREATE TABLE IF NOT EXISTS councils (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		name VARCHAR(255) NOT NULL,
		abn VARCHAR(20),
		default_suburb VARCHAR(128),
		default_postcode VARCHAR(10),
		default_state VARCHAR(10) NOT NULL DEFAULT 'QLD',
		federal_electorate VARCHAR(128),
		state_electorate VARCHAR(128),
		qhigi_region VARCHAR(128),
		is_registered_housing_provider BOOLEAN NOT NULL DEFAULT FALSE,
		default_principal_officer_id UUID,
		default_senior_officer_id UUID,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS contacts (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		council_id UUID NOT NULL REFERENCES councils(id),
		name VARCHAR(255) NOT NULL,
		position VARCHAR(255) NOT NULL DEFAULT '',
		email VARCHAR(255) NOT NULL DEFAULT '',
		phone VARCHAR(64) NOT NULL DEFAULT '',
		address TEXT,
		postal_address TEXT
	);`,
	`CREATE TABLE IF NOT EXISTS programs (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		name VARCHAR(255) NOT NULL,
		description TEXT,
		funding_source VARCHAR(32),
		budget NUMERIC(15,2),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		email VARCHAR(255) NOT NULL,
		first_name VARCHAR(128),
		last_name VARCHAR(128),
		password_hash VARCHAR(255) NOT NULL,
		role user_role NOT NULL,
		council_id UUID REFERENCES councils(id),
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_users_email ON users (email);`,
	`CREATE TABLE IF NOT EXISTS officers (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		user_id UUID NOT NULL REFERENCES users(id),
		position VARCHAR(255),
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		is_principal BOOLEAN NOT NULL DEFAULT FALSE,
		is_senior BOOLEAN NOT NULL DEFAULT FALSE
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_officers_user_id ON officers (user_id);`,
	`CREATE TABLE IF NOT EXISTS work_types (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		code VARCHAR(64) NOT NULL,
		name VARCHAR(255) NOT NULL,
		description TEXT,
		is_active BOOLEAN NOT NULL DEFAULT TRUE
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_work_types_code ON work_types (code);`,
	`CREATE TABLE IF NOT EXISTS output_types (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		code VARCHAR(64) NOT NULL,
		name VARCHAR(255) NOT NULL,
		description TEXT,
		is_active BOOLEAN NOT NULL DEFAULT TRUE
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_output_types_code ON output_types (code);`,
	`CREATE TABLE IF NOT EXISTS work_type_allowed_outputs (
		work_type_id UUID NOT NULL REFERENCES work_types(id) ON DELETE CASCADE,
		output_type_id UUID NOT NULL REFERENCES output_types(id) ON DELETE CASCADE,
		PRIMARY KEY (work_type_id, output_type_id)
	);`,
	`CREATE TABLE IF NOT EXISTS construction_methods (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		code VARCHAR(64) NOT NULL,
		name VARCHAR(255) NOT NULL,
		description TEXT,
		is_active BOOLEAN NOT NULL DEFAULT TRUE
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_construction_methods_code ON construction_methods (code);`,
	`CREATE TABLE IF NOT EXISTS funding_schedules (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		council_id UUID NOT NULL REFERENCES councils(id),
		program_id UUID NOT NULL REFERENCES programs(id),
		funding_schedule_number INTEGER NOT NULL,
		funding_amount NUMERIC(15,2) NOT NULL DEFAULT 0,
		contingency_amount NUMERIC(15,2),
		first_payment_amount NUMERIC(15,2),
		first_release_date DATE,
		first_reference_number VARCHAR(64),
		agreement_type agreement_type NOT NULL DEFAULT 'funding_schedule',
		remote_capital_program_id UUID,
		date_sent_to_council DATE,
		date_council_signed DATE,
		date_delegate_signed DATE,
		executed_date DATE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_funding_schedule_number ON funding_schedules (council_id, funding_schedule_number);`,
	`CREATE TABLE IF NOT EXISTS instalments (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		funding_schedule_id UUID NOT NULL REFERENCES funding_schedules(id) ON DELETE CASCADE,
		due_date DATE NOT NULL,
		amount NUMERIC(15,2) NOT NULL,
		paid BOOLEAN NOT NULL DEFAULT FALSE,
		release_date DATE,
		payment_reference VARCHAR(64)
	);`,
	`CREATE TABLE IF NOT EXISTS funding_approvals (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		mincor_reference VARCHAR(64) NOT NULL,
		amount NUMERIC(15,2) NOT NULL,
		approved_by_position VARCHAR(255) NOT NULL,
		approved_date DATE NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS council_agreements (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		council_id UUID NOT NULL REFERENCES councils(id),
		kind agreement_type NOT NULL,
		notes TEXT,
		funding_amount NUMERIC(15,2) NOT NULL DEFAULT 0,
		contingency_amount NUMERIC(15,2),
		date_sent_to_council DATE,
		date_council_signed DATE,
		date_delegate_signed DATE
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_council_agreement_kind ON council_agreements (council_id, kind);`,
	`CREATE TABLE IF NOT EXISTS projects (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		council_id UUID NOT NULL REFERENCES councils(id),
		program_id UUID NOT NULL REFERENCES programs(id),
		funding_schedule_id UUID REFERENCES funding_schedules(id),
		name VARCHAR(255) NOT NULL,
		description TEXT,
		state project_state NOT NULL DEFAULT 'prospective',
		principal_officer VARCHAR(255),
		senior_officer VARCHAR(255),
		start_date DATE,
		stage1_target DATE,
		stage1_sunset DATE,
		stage2_target DATE,
		stage2_sunset DATE,
		sap_project VARCHAR(64),
		sap_master_project VARCHAR(64),
		cli_no VARCHAR(64),
		project_manager VARCHAR(32),
		contractor VARCHAR(32),
		contractor_address TEXT,
		external_manager_name VARCHAR(255),
		contractor_organisation VARCHAR(255),
		funding_schedule_amount NUMERIC(15,2),
		contingency_amount NUMERIC(15,2),
		commitments NUMERIC(15,2),
		contingency_percentage NUMERIC(5,2) NOT NULL DEFAULT 0,
		forecast_final_cost NUMERIC(15,2),
		final_cost NUMERIC(15,2),
		costs_finalised BOOLEAN NOT NULL DEFAULT FALSE,
		handover_forecast DATE,
		handover_actual DATE,
		commencement_loa_forecast DATE,
		commencement_loa_actual DATE,
		date_physically_commenced DATE,
		estimated_completion DATE,
		actual_completion DATE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_projects_council_id ON projects (council_id);`,
	`CREATE INDEX IF NOT EXISTS idx_projects_state ON projects (state);`,
	`CREATE TABLE IF NOT EXISTS funding_approval_projects (
		funding_approval_id UUID NOT NULL REFERENCES funding_approvals(id) ON DELETE CASCADE,
		project_id UUID NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		PRIMARY KEY (funding_approval_id, project_id)
	);`,
	`CREATE TABLE IF NOT EXISTS addresses (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		project_id UUID NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		street VARCHAR(255) NOT NULL,
		suburb VARCHAR(128) NOT NULL,
		postcode VARCHAR(10) NOT NULL,
		state VARCHAR(10) NOT NULL DEFAULT 'QLD',
		work_type_id UUID REFERENCES work_types(id),
		output_type_id UUID REFERENCES output_types(id),
		construction_method_id UUID REFERENCES construction_methods(id),
		bedrooms INTEGER,
		output_quantity INTEGER NOT NULL DEFAULT 1,
		budget NUMERIC(15,2),
		lot_number VARCHAR(64),
		plan_number VARCHAR(64),
		title_reference VARCHAR(64)
	);`,
	`CREATE INDEX IF NOT EXISTS idx_addresses_project_id ON addresses (project_id);`,
	`CREATE TABLE IF NOT EXISTS works (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		address_id UUID NOT NULL REFERENCES addresses(id) ON DELETE CASCADE,
		work_type_id UUID NOT NULL REFERENCES work_types(id),
		output_type_id UUID NOT NULL REFERENCES output_types(id),
		construction_method_id UUID REFERENCES construction_methods(id),
		output_quantity INTEGER NOT NULL DEFAULT 1,
		bedrooms INTEGER,
		bathrooms INTEGER,
		kitchens INTEGER,
		dwellings_count INTEGER NOT NULL DEFAULT 1,
		land_status VARCHAR(128),
		floor_method VARCHAR(128),
		frame_method VARCHAR(128),
		external_wall_method VARCHAR(128),
		roof_method VARCHAR(128),
		car_accommodation VARCHAR(128),
		additional_facilities TEXT,
		extension_high_low VARCHAR(64),
		estimated_cost NUMERIC(15,2),
		actual_cost NUMERIC(15,2),
		start_date DATE,
		end_date DATE,
		progress_percentage INTEGER NOT NULL DEFAULT 0
	);`,
	`CREATE INDEX IF NOT EXISTS idx_works_address_id ON works (address_id);`,
	`CREATE TABLE IF NOT EXISTS default_work_steps (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		program_id UUID NOT NULL REFERENCES programs(id) ON DELETE CASCADE,
		work_type_id UUID NOT NULL REFERENCES work_types(id) ON DELETE CASCADE,
		step_order INTEGER NOT NULL,
		name VARCHAR(255) NOT NULL,
		description TEXT,
		due_offset_days INTEGER NOT NULL DEFAULT 0
	);`,
	`CREATE TABLE IF NOT EXISTS work_steps (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		work_id UUID NOT NULL REFERENCES works(id) ON DELETE CASCADE,
		step_order INTEGER NOT NULL,
		name VARCHAR(255) NOT NULL,
		description TEXT,
		completed BOOLEAN NOT NULL DEFAULT FALSE,
		due_date DATE
	);`,
	`CREATE TABLE IF NOT EXISTS defects (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		work_id UUID NOT NULL REFERENCES works(id) ON DELETE CASCADE,
		description TEXT NOT NULL,
		identified_date DATE NOT NULL,
		rectified_date DATE
	);`,
	`CREATE TABLE IF NOT EXISTS practical_completions (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		project_id UUID NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		completion_date DATE,
		notes TEXT
	);`,
	`CREATE TABLE IF NOT EXISTS quarterly_reports (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		work_id UUID NOT NULL REFERENCES works(id) ON DELETE CASCADE,
		quarter VARCHAR(32) NOT NULL,
		submission_date DATE NOT NULL,
		percentage_works_completed NUMERIC(5,2),
		total_expenditure_council NUMERIC(15,2),
		unspent_funding_amount NUMERIC(15,2),
		practical_completion_forecast_date DATE,
		practical_completion_actual_date DATE,
		adverse_matters TEXT,
		council_contributions_details TEXT,
		other_contributions_details TEXT,
		council_contributions_amount NUMERIC(15,2),
		other_contributions_amount NUMERIC(15,2),
		summary_notes TEXT,
		staff_assessment_notes TEXT,
		staff_assessed_date DATE,
		council_manager_decision manager_decision NOT NULL DEFAULT 'pending',
		council_manager_comments TEXT,
		council_manager_decision_date DATE,
		manager_decision manager_decision NOT NULL DEFAULT 'pending',
		manager_comments TEXT,
		manager_decision_date DATE
	);`,
	`CREATE INDEX IF NOT EXISTS idx_quarterly_reports_work_id ON quarterly_reports (work_id);`,
	`CREATE TABLE IF NOT EXISTS monthly_trackers (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		work_id UUID NOT NULL REFERENCES works(id) ON DELETE CASCADE,
		month DATE NOT NULL,
		progress_notes TEXT,
		design_tender_date DATE,
		design_award_date DATE,
		construction_tender_date DATE,
		construction_award_date DATE,
		ergon_connection_application_date DATE,
		ergon_connection_date DATE,
		site_establishment_date DATE,
		earthworks_date DATE,
		slab_date DATE,
		underground_services_date DATE,
		termite_prevention_date DATE,
		sub_floor_framing_concrete_date DATE,
		end_of_year_shutdown DATE,
		wall_frames_masonry_date DATE,
		roof_framing_battens_date DATE,
		roof_sheeting_date DATE,
		fascia_gutter_date DATE,
		soffit_linings_gables_date DATE,
		plumbing_electrical_rough_in_date DATE,
		internal_wall_ceiling_linings_date DATE,
		internal_floor_coverings_date DATE,
		carpentry_2nd_fix_date DATE,
		wet_area_wall_linings_date DATE,
		joinery_install_date DATE,
		internal_painting_date DATE,
		external_doors_windows_date DATE,
		external_decks_stairs_balustrade_date DATE,
		waterproofing_date DATE,
		external_painting_date DATE,
		electrical_fit_off_date DATE,
		plumbing_fit_off_date DATE,
		carpentry_3rd_fix_date DATE,
		fencing_gates_date DATE,
		clothesline_date DATE,
		driveway_paths_date DATE,
		shed_date DATE,
		site_clean_date DATE,
		final_internal_clean_handover_date DATE
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_monthly_trackers_work_month ON monthly_trackers (work_id, month);`,
	`CREATE TABLE IF NOT EXISTS monthly_reports (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		council_id UUID NOT NULL REFERENCES councils(id),
		period DATE NOT NULL,
		council_comments TEXT,
		council_manager_decision manager_decision NOT NULL DEFAULT 'pending',
		council_manager_comments TEXT,
		council_manager_decision_date DATE,
		ricd_status review_status NOT NULL DEFAULT 'needs_more_info',
		ricd_comments TEXT
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_monthly_reports_council_period ON monthly_reports (council_id, period);`,
	`CREATE TABLE IF NOT EXISTS council_quarterly_reports (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		council_id UUID NOT NULL REFERENCES councils(id),
		period DATE NOT NULL,
		council_comments TEXT,
		ricd_status review_status NOT NULL DEFAULT 'needs_more_info',
		ricd_comments TEXT
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_council_quarterly_reports_council_period ON council_quarterly_reports (council_id, period);`,
	`CREATE TABLE IF NOT EXISTS stage1_reports (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		project_id UUID NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		submission_date DATE NOT NULL,
		report_type report_type NOT NULL DEFAULT 'construction',
		expenditure_records_maintained BOOLEAN NOT NULL DEFAULT FALSE,
		quarterly_reports_provided BOOLEAN NOT NULL DEFAULT FALSE,
		native_title_addressed BOOLEAN NOT NULL DEFAULT FALSE,
		heritage_matters_addressed BOOLEAN NOT NULL DEFAULT FALSE,
		development_approval_obtained BOOLEAN NOT NULL DEFAULT FALSE,
		tenure_obtained BOOLEAN NOT NULL DEFAULT FALSE,
		land_surveyed BOOLEAN NOT NULL DEFAULT FALSE,
		subdivision_required BOOLEAN NOT NULL DEFAULT FALSE,
		subdivision_plan_prepared BOOLEAN NOT NULL DEFAULT FALSE,
		design_approved BOOLEAN NOT NULL DEFAULT FALSE,
		structural_certification_obtained BOOLEAN NOT NULL DEFAULT FALSE,
		council_contractors_used BOOLEAN NOT NULL DEFAULT FALSE,
		infrastructure_approvals_obtained BOOLEAN NOT NULL DEFAULT FALSE,
		building_approval_obtained BOOLEAN NOT NULL DEFAULT FALSE,
		tenders_called BOOLEAN NOT NULL DEFAULT FALSE,
		contractor_appointed BOOLEAN NOT NULL DEFAULT FALSE,
		contractor_details TEXT,
		completion_notes TEXT,
		ricd_status review_status NOT NULL DEFAULT 'pending',
		ricd_comments TEXT,
		acceptance_date DATE
	);`,
	`CREATE TABLE IF NOT EXISTS stage2_reports (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		project_id UUID NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		submission_date DATE NOT NULL,
		report_type report_type NOT NULL DEFAULT 'construction',
		schedule_provided BOOLEAN NOT NULL DEFAULT FALSE,
		schedule_provided_date DATE,
		quarterly_reports_provided BOOLEAN NOT NULL DEFAULT FALSE,
		monthly_trackers_provided BOOLEAN NOT NULL DEFAULT FALSE,
		practical_completion_achieved BOOLEAN NOT NULL DEFAULT FALSE,
		practical_completion_date DATE,
		practical_completion_notification_sent BOOLEAN NOT NULL DEFAULT FALSE,
		notification_date DATE,
		land_works_completed BOOLEAN NOT NULL DEFAULT FALSE,
		handover_requirements_met BOOLEAN NOT NULL DEFAULT FALSE,
		handover_checklist_completed BOOLEAN NOT NULL DEFAULT FALSE,
		warranties_provided BOOLEAN NOT NULL DEFAULT FALSE,
		final_plans_provided BOOLEAN NOT NULL DEFAULT FALSE,
		joint_inspection_completed BOOLEAN NOT NULL DEFAULT FALSE,
		joint_inspection_date DATE,
		completion_notes TEXT,
		council_manager_decision manager_decision NOT NULL DEFAULT 'pending',
		council_manager_comments TEXT,
		ricd_status review_status NOT NULL DEFAULT 'pending',
		ricd_comments TEXT,
		acceptance_date DATE
	);`,
	`CREATE TABLE IF NOT EXISTS stage_steps (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		stage INTEGER NOT NULL,
		name VARCHAR(255) NOT NULL,
		description TEXT,
		required_evidence TEXT,
		document_required BOOLEAN NOT NULL DEFAULT FALSE,
		document_description TEXT,
		step_order INTEGER NOT NULL DEFAULT 0,
		is_active BOOLEAN NOT NULL DEFAULT TRUE
	);`,
	`CREATE TABLE IF NOT EXISTS stage_step_completions (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		stage1_report_id UUID REFERENCES stage1_reports(id) ON DELETE CASCADE,
		stage2_report_id UUID REFERENCES stage2_reports(id) ON DELETE CASCADE,
		step_id UUID NOT NULL REFERENCES stage_steps(id),
		completed BOOLEAN NOT NULL DEFAULT FALSE,
		completed_date DATE,
		evidence_notes TEXT,
		document_path TEXT
	);`,
	`CREATE TABLE IF NOT EXISTS report_attachments (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		quarterly_report_id UUID REFERENCES quarterly_reports(id) ON DELETE CASCADE,
		monthly_tracker_id UUID REFERENCES monthly_trackers(id) ON DELETE CASCADE,
		stage1_report_id UUID REFERENCES stage1_reports(id) ON DELETE CASCADE,
		stage2_report_id UUID REFERENCES stage2_reports(id) ON DELETE CASCADE,
		name VARCHAR(255) NOT NULL,
		file_path TEXT NOT NULL,
		description TEXT,
		upload_date TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS field_visibility_settings (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		council_id UUID NOT NULL REFERENCES councils(id) ON DELETE CASCADE,
		field_name VARCHAR(64) NOT NULL,
		visible BOOLEAN NOT NULL DEFAULT TRUE
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_field_visibility_council_field ON field_visibility_settings (council_id, field_name);`,
	`CREATE TABLE IF NOT EXISTS project_field_visibility_overrides (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		project_id UUID NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		field_name VARCHAR(64) NOT NULL,
		visible BOOLEAN NOT NULL DEFAULT TRUE
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_project_visibility_project_field ON project_field_visibility_overrides (project_id, field_name);`,
}

func runMigrations(db *gorm.DB) error {
	for i, stmt := range migrationStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
