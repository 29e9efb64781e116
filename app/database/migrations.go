package database

import (
	"database/sql"
	"log"
)

// RunMigrations checks and applies necessary schema updates
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	steps := []struct {
		name  string
		query string
	}{
		{"pgcrypto extension", `CREATE EXTENSION IF NOT EXISTS pgcrypto`},
		{"users table", `
			CREATE TABLE IF NOT EXISTS users (
				id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
				email TEXT NOT NULL UNIQUE,
				password TEXT NOT NULL,
				first_name TEXT NOT NULL,
				last_name TEXT NOT NULL,
				phone VARCHAR(20),
				is_active BOOLEAN NOT NULL DEFAULT true,
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				deleted_at TIMESTAMPTZ
			)`},
		{"sessions table", `
			CREATE TABLE IF NOT EXISTS sessions (
				id UUID PRIMARY KEY,
				user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
				expires_at TIMESTAMPTZ NOT NULL,
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			)`},
		{"roles table", `
			CREATE TABLE IF NOT EXISTS roles (
				id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
				name TEXT NOT NULL UNIQUE
			)`},
		{"user_roles table", `
			CREATE TABLE IF NOT EXISTS user_roles (
				user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
				role_id UUID NOT NULL REFERENCES roles(id) ON DELETE CASCADE,
				PRIMARY KEY (user_id, role_id)
			)`},
		{"departments table", `
			CREATE TABLE IF NOT EXISTS departments (
				id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
				name_ar TEXT NOT NULL,
				name_en TEXT NOT NULL DEFAULT '',
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			)`},
		{"programs table", `
			CREATE TABLE IF NOT EXISTS programs (
				id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
				name_ar TEXT NOT NULL,
				name_en TEXT NOT NULL DEFAULT '',
				department_id UUID REFERENCES departments(id) ON DELETE SET NULL,
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			)`},
		{"services table", `
			CREATE TABLE IF NOT EXISTS services (
				id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
				title_ar TEXT NOT NULL,
				title_en TEXT NOT NULL DEFAULT '',
				description_ar TEXT NOT NULL DEFAULT '',
				description_en TEXT NOT NULL DEFAULT '',
				icon TEXT NOT NULL DEFAULT 'FileText',
				category VARCHAR(20) NOT NULL DEFAULT 'academic',
				status VARCHAR(20) NOT NULL DEFAULT 'active',
				is_featured BOOLEAN NOT NULL DEFAULT false,
				processing_time TEXT NOT NULL DEFAULT '',
				fee NUMERIC(10,2) NOT NULL DEFAULT 0 CHECK (fee >= 0),
				required_documents TEXT[] NOT NULL DEFAULT '{}',
				benefits TEXT[] NOT NULL DEFAULT '{}',
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			)`},
		{"clubs table", `
			CREATE TABLE IF NOT EXISTS clubs (
				id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
				name_ar TEXT NOT NULL,
				name_en TEXT NOT NULL DEFAULT '',
				description_ar TEXT NOT NULL DEFAULT '',
				description_en TEXT NOT NULL DEFAULT '',
				category VARCHAR(20) NOT NULL DEFAULT 'cultural',
				supervisor TEXT NOT NULL DEFAULT '',
				location TEXT NOT NULL DEFAULT '',
				max_members INTEGER NOT NULL DEFAULT 50,
				current_members INTEGER NOT NULL DEFAULT 0,
				status VARCHAR(20) NOT NULL DEFAULT 'active',
				is_featured BOOLEAN NOT NULL DEFAULT false,
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			)`},
		{"activities table", `
			CREATE TABLE IF NOT EXISTS activities (
				id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
				title_ar TEXT NOT NULL,
				title_en TEXT NOT NULL DEFAULT '',
				description_ar TEXT NOT NULL DEFAULT '',
				description_en TEXT NOT NULL DEFAULT '',
				type VARCHAR(20) NOT NULL DEFAULT 'event',
				category TEXT NOT NULL DEFAULT '',
				start_date TIMESTAMPTZ,
				end_date TIMESTAMPTZ,
				registration_deadline TIMESTAMPTZ,
				location TEXT NOT NULL DEFAULT '',
				organizer TEXT NOT NULL DEFAULT '',
				max_participants INTEGER NOT NULL DEFAULT 100,
				current_participants INTEGER NOT NULL DEFAULT 0,
				status VARCHAR(20) NOT NULL DEFAULT 'planned',
				is_featured BOOLEAN NOT NULL DEFAULT false,
				fee NUMERIC(10,2) NOT NULL DEFAULT 0,
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			)`},
		{"appointments table", `
			CREATE TABLE IF NOT EXISTS appointments (
				id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
				title TEXT NOT NULL,
				type TEXT NOT NULL DEFAULT '',
				scheduled_at TIMESTAMPTZ NOT NULL,
				duration_minutes INTEGER NOT NULL DEFAULT 30,
				location TEXT NOT NULL DEFAULT '',
				staff_member TEXT NOT NULL DEFAULT '',
				status VARCHAR(20) NOT NULL DEFAULT 'scheduled',
				notes TEXT NOT NULL DEFAULT '',
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			)`},
		{"students table", `
			CREATE TABLE IF NOT EXISTS students (
				id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
				user_id UUID NOT NULL UNIQUE REFERENCES users(id) ON DELETE CASCADE,
				student_number TEXT NOT NULL UNIQUE,
				name_ar TEXT NOT NULL,
				name_en TEXT NOT NULL DEFAULT '',
				email TEXT NOT NULL DEFAULT '',
				phone VARCHAR(20),
				college TEXT NOT NULL DEFAULT '',
				department TEXT NOT NULL DEFAULT '',
				program TEXT NOT NULL DEFAULT '',
				academic_year INTEGER NOT NULL DEFAULT 1,
				semester INTEGER NOT NULL DEFAULT 1,
				status VARCHAR(20) NOT NULL DEFAULT 'active',
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			)`},
		{"teachers table", `
			CREATE TABLE IF NOT EXISTS teachers (
				id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
				user_id UUID NOT NULL UNIQUE REFERENCES users(id) ON DELETE CASCADE,
				name_ar TEXT NOT NULL,
				name_en TEXT NOT NULL DEFAULT '',
				email TEXT NOT NULL DEFAULT '',
				phone VARCHAR(20),
				department_id UUID REFERENCES departments(id) ON DELETE SET NULL,
				position VARCHAR(30) NOT NULL DEFAULT 'lecturer',
				specialization TEXT NOT NULL DEFAULT '',
				qualifications TEXT NOT NULL DEFAULT '',
				office_location TEXT NOT NULL DEFAULT '',
				office_hours TEXT NOT NULL DEFAULT '',
				bio TEXT NOT NULL DEFAULT '',
				profile_image_url TEXT NOT NULL DEFAULT '',
				cv_url TEXT NOT NULL DEFAULT '',
				is_active BOOLEAN NOT NULL DEFAULT true,
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			)`},
		{"payments table", `
			CREATE TABLE IF NOT EXISTS payments (
				id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
				student_id UUID NOT NULL REFERENCES students(id) ON DELETE CASCADE,
				program_id UUID REFERENCES programs(id) ON DELETE SET NULL,
				amount NUMERIC(10,2) NOT NULL,
				currency VARCHAR(3) NOT NULL DEFAULT 'YER',
				type VARCHAR(20) NOT NULL DEFAULT 'tuition',
				status VARCHAR(20) NOT NULL DEFAULT 'pending',
				method VARCHAR(50) NOT NULL DEFAULT '',
				payment_date TIMESTAMPTZ,
				due_date TIMESTAMPTZ,
				invoice_number TEXT NOT NULL DEFAULT '',
				reference TEXT NOT NULL DEFAULT '',
				academic_year VARCHAR(9) NOT NULL DEFAULT '',
				semester INTEGER NOT NULL DEFAULT 1,
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			)`},
		{"provisioning_failures table", `
			CREATE TABLE IF NOT EXISTS provisioning_failures (
				id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
				kind VARCHAR(20) NOT NULL,
				user_id UUID,
				email TEXT NOT NULL DEFAULT '',
				phase TEXT NOT NULL,
				failure TEXT NOT NULL,
				resolved BOOLEAN NOT NULL DEFAULT false,
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			)`},
	}

	for _, step := range steps {
		if _, err := db.Exec(step.query); err != nil {
			log.Printf("Failed to run migration for %s: %v", step.name, err)
			return err
		}
	}

	log.Println("Database migrations completed successfully")
	return nil
}
