package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

type migrationStep struct {
	Name string
	SQL  string
}

// sentinelTable is checked before running; if it exists the schema is assumed current.
const sentinelTable = "public.users"

var steps = []migrationStep{
	{
		Name: "create_extension_uuid_ossp",
		SQL:  `CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	},
	{
		Name: "create_table_users",
		SQL: `CREATE TABLE IF NOT EXISTS users (
  id                 UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  auth_id            TEXT        UNIQUE,
  email              TEXT        NOT NULL DEFAULT '',
  full_name          TEXT        NOT NULL DEFAULT '',
  phone              TEXT        NOT NULL DEFAULT '',
  blood_type         TEXT        NOT NULL CHECK (blood_type IN ('A+','A-','B+','B-','AB+','AB-','O+','O-')),
  city               TEXT        NOT NULL DEFAULT '',
  state              TEXT        NOT NULL DEFAULT '',
  address            TEXT        NOT NULL DEFAULT '',
  date_of_birth      DATE,
  gender             TEXT        NOT NULL DEFAULT '',
  latitude           DOUBLE PRECISION,
  longitude          DOUBLE PRECISION,
  is_donor           BOOLEAN     NOT NULL DEFAULT true,
  is_available       BOOLEAN     NOT NULL DEFAULT true,
  total_donations    INTEGER     NOT NULL DEFAULT 0 CHECK (total_donations >= 0),
  last_donation_date DATE,
  created_at         TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at         TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_users_blood_type_available",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_users_blood_type_available ON users (blood_type, is_available) WHERE is_donor;`,
	},
	{
		Name: "create_table_hospitals",
		SQL: `CREATE TABLE IF NOT EXISTS hospitals (
  id             UUID    PRIMARY KEY DEFAULT uuid_generate_v4(),
  name           TEXT    NOT NULL,
  address        TEXT    NOT NULL DEFAULT '',
  city           TEXT    NOT NULL DEFAULT '',
  state          TEXT    NOT NULL DEFAULT '',
  phone          TEXT    NOT NULL DEFAULT '',
  latitude       DOUBLE PRECISION,
  longitude      DOUBLE PRECISION,
  has_blood_bank BOOLEAN NOT NULL DEFAULT false,
  is_verified    BOOLEAN NOT NULL DEFAULT false
);`,
	},
	{
		Name: "create_table_blood_requests",
		SQL: `CREATE TABLE IF NOT EXISTS blood_requests (
  id            UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  requester_id  UUID        REFERENCES users (id),
  hospital_id   UUID        REFERENCES hospitals (id),
  patient_name  TEXT        NOT NULL DEFAULT '',
  blood_type    TEXT        NOT NULL,
  units_needed  INTEGER     NOT NULL CHECK (units_needed > 0),
  urgency       TEXT        NOT NULL DEFAULT 'normal',
  is_emergency  BOOLEAN     NOT NULL DEFAULT false,
  status        TEXT        NOT NULL DEFAULT 'pending' CHECK (status IN ('pending','fulfilled','cancelled')),
  city          TEXT        NOT NULL DEFAULT '',
  contact_phone TEXT        NOT NULL DEFAULT '',
  notes         TEXT        NOT NULL DEFAULT '',
  created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_donations",
		SQL: `CREATE TABLE IF NOT EXISTS donations (
  id            UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  donor_id      UUID        NOT NULL REFERENCES users (id),
  hospital_id   UUID        REFERENCES hospitals (id),
  donation_date TIMESTAMPTZ NOT NULL,
  units_donated INTEGER     NOT NULL DEFAULT 1 CHECK (units_donated > 0),
  status        TEXT        NOT NULL DEFAULT 'completed',
  notes         TEXT        NOT NULL DEFAULT '',
  created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_blood_inventory",
		SQL: `CREATE TABLE IF NOT EXISTS blood_inventory (
  id              UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  hospital_id     UUID        NOT NULL REFERENCES hospitals (id),
  blood_type      TEXT        NOT NULL,
  units_available INTEGER     NOT NULL DEFAULT 0 CHECK (units_available >= 0),
  units_reserved  INTEGER     NOT NULL DEFAULT 0 CHECK (units_reserved >= 0),
  last_updated    TIMESTAMPTZ NOT NULL DEFAULT now(),
  UNIQUE (hospital_id, blood_type)
);`,
	},
	{
		Name: "create_table_events",
		SQL: `CREATE TABLE IF NOT EXISTS events (
  id          UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  hospital_id UUID        REFERENCES hospitals (id),
  title       TEXT        NOT NULL,
  description TEXT        NOT NULL DEFAULT '',
  event_type  TEXT        NOT NULL DEFAULT 'camp',
  city        TEXT        NOT NULL DEFAULT '',
  location    TEXT        NOT NULL DEFAULT '',
  start_date  TIMESTAMPTZ NOT NULL,
  end_date    TIMESTAMPTZ,
  is_active   BOOLEAN     NOT NULL DEFAULT true,
  created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_certificates",
		SQL: `CREATE TABLE IF NOT EXISTS certificates (
  id                 UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  user_id            UUID        NOT NULL REFERENCES users (id),
  donation_id        UUID        REFERENCES donations (id),
  certificate_number TEXT        NOT NULL UNIQUE,
  issued_date        DATE        NOT NULL,
  storage_path       TEXT        NOT NULL DEFAULT '',
  created_at         TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_notifications",
		SQL: `CREATE TABLE IF NOT EXISTS notifications (
  id         UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  user_id    UUID        NOT NULL REFERENCES users (id),
  title      TEXT        NOT NULL,
  message    TEXT        NOT NULL,
  type       TEXT        NOT NULL,
  data       JSONB       NOT NULL DEFAULT '{}'::jsonb,
  is_read    BOOLEAN     NOT NULL DEFAULT false,
  created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_donor_matches",
		SQL: `CREATE TABLE IF NOT EXISTS donor_matches (
  request_id  UUID        NOT NULL REFERENCES blood_requests (id),
  donor_id    UUID        NOT NULL REFERENCES users (id),
  status      TEXT        NOT NULL,
  notified_at TIMESTAMPTZ NOT NULL,
  PRIMARY KEY (request_id, donor_id)
);`,
	},
	{
		Name: "create_table_hospital_queue",
		SQL: `CREATE TABLE IF NOT EXISTS hospital_queue (
  id               UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  hospital_id      UUID        NOT NULL REFERENCES hospitals (id),
  donor_id         UUID        NOT NULL REFERENCES users (id),
  appointment_date DATE        NOT NULL,
  queue_number     INTEGER     NOT NULL,
  status           TEXT        NOT NULL DEFAULT 'waiting' CHECK (status IN ('waiting','in_progress','completed')),
  check_in_time    TIMESTAMPTZ,
  completed_time   TIMESTAMPTZ,
  created_at       TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_hospital_queue_day",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_hospital_queue_day ON hospital_queue (hospital_id, appointment_date, queue_number);`,
	},
	{
		Name: "create_table_health_checks",
		SQL: `CREATE TABLE IF NOT EXISTS health_checks (
  id                       UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  user_id                  UUID        NOT NULL REFERENCES users (id),
  age                      INTEGER,
  weight_kg                DOUBLE PRECISION,
  hemoglobin               DOUBLE PRECISION,
  blood_pressure_systolic  INTEGER,
  blood_pressure_diastolic INTEGER,
  pulse_rate               INTEGER,
  temperature              DOUBLE PRECISION,
  has_recent_illness       BOOLEAN     NOT NULL DEFAULT false,
  has_recent_surgery       BOOLEAN     NOT NULL DEFAULT false,
  has_tattoo_recently      BOOLEAN     NOT NULL DEFAULT false,
  is_pregnant              BOOLEAN     NOT NULL DEFAULT false,
  is_breastfeeding         BOOLEAN     NOT NULL DEFAULT false,
  on_medication            BOOLEAN     NOT NULL DEFAULT false,
  medication_details       TEXT        NOT NULL DEFAULT '',
  is_eligible              BOOLEAN     NOT NULL,
  eligibility_reason       TEXT        NOT NULL,
  created_at               TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
}

// EnsureMigrated runs every step when the sentinel table is missing and is a no-op otherwise.
func EnsureMigrated(ctx context.Context, db *sql.DB, logger *logrus.Logger, dbHost string) error {
	start := time.Now()
	log := logger.WithFields(logrus.Fields{
		"component": "database",
		"db_host":   dbHost,
	})

	log.WithField("status", "starting").Info("db_migration_check")

	var exists bool
	err := db.QueryRowContext(ctx, "SELECT to_regclass($1) IS NOT NULL", sentinelTable).Scan(&exists)
	if err != nil {
		log.WithFields(logrus.Fields{
			"status":      "error",
			"duration_ms": time.Since(start).Milliseconds(),
		}).WithError(err).Error("db_migration_failed")
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		log.WithFields(logrus.Fields{
			"status":      "success",
			"duration_ms": time.Since(start).Milliseconds(),
		}).Info("db_migration_skip")
		return nil
	}

	log.WithField("status", "in_progress").Info("db_migration_start")

	for _, step := range steps {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			log.WithFields(logrus.Fields{
				"status":           "error",
				"migration_step":   step.Name,
				"duration_ms":      time.Since(start).Milliseconds(),
				"step_duration_ms": time.Since(stepStart).Milliseconds(),
			}).WithError(err).Error("db_migration_failed")
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		log.WithFields(logrus.Fields{
			"status":           "success",
			"migration_step":   step.Name,
			"step_duration_ms": time.Since(stepStart).Milliseconds(),
		}).Info("db_migration_step")
	}

	log.WithFields(logrus.Fields{
		"status":      "success",
		"steps":       len(steps),
		"duration_ms": time.Since(start).Milliseconds(),
	}).Info("db_migration_success")

	return nil
}
