package repos

import (
	"log"

	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"
	_ "modernc.org/sqlite"
)

func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}

	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	// Reference data and demo content (idempotent; safe to run every start)
	if err := seedUsers(db); err != nil {
		return nil, err
	}
	if err := seedTemplates(db); err != nil {
		return nil, err
	}
	if err := seedContent(db); err != nil {
		return nil, err
	}

	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
PRAGMA foreign_keys = ON;

-- Users & Sessions
CREATE TABLE IF NOT EXISTS users(
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  email TEXT NOT NULL UNIQUE,
  phone TEXT NOT NULL DEFAULT '',
  provider TEXT NOT NULL DEFAULT 'local' CHECK (provider IN ('local','google')),
  password_hash TEXT NOT NULL DEFAULT '',
  role TEXT NOT NULL DEFAULT 'user' CHECK (role IN ('user','admin')),
  active INTEGER NOT NULL DEFAULT 1,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email ON users(LOWER(email));

CREATE TABLE IF NOT EXISTS sessions(
  id TEXT PRIMARY KEY,               -- same value as the 'sid' cookie
  user_id TEXT NULL REFERENCES users(id) ON DELETE SET NULL,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  last_seen  TEXT
);
CREATE INDEX IF NOT EXISTS idx_sessions_user ON sessions(user_id);

-- Product templates (reference data, keyed by model number)
CREATE TABLE IF NOT EXISTS product_templates(
  id TEXT PRIMARY KEY,
  model_number TEXT NOT NULL,
  name TEXT NOT NULL,
  description TEXT NOT NULL DEFAULT '',
  warranty_months INTEGER NOT NULL DEFAULT 12,
  amc_months INTEGER NOT NULL DEFAULT 12,
  service_frequency_days INTEGER NOT NULL DEFAULT 90,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_templates_model ON product_templates(LOWER(model_number));

-- Registered products
CREATE TABLE IF NOT EXISTS products(
  id TEXT PRIMARY KEY,
  user_id TEXT NOT NULL,
  name TEXT NOT NULL,
  model_number TEXT NOT NULL,
  purchase_date TEXT NOT NULL,
  image_url TEXT NOT NULL DEFAULT '',
  warranty_start TEXT NOT NULL,
  warranty_end TEXT NOT NULL,
  amc_start TEXT NOT NULL,
  amc_end TEXT NOT NULL,
  approved INTEGER NOT NULL DEFAULT 0,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT
);
CREATE INDEX IF NOT EXISTS idx_products_user ON products(user_id);
CREATE INDEX IF NOT EXISTS idx_products_model ON products(model_number);

-- Service requests (no FK on product_id: tickets outlive deleted products)
CREATE TABLE IF NOT EXISTS service_requests(
  id TEXT PRIMARY KEY,
  user_id TEXT NOT NULL,
  product_id TEXT NOT NULL,
  issue TEXT NOT NULL,
  requested_date TEXT NOT NULL,
  requested_time TEXT NOT NULL DEFAULT '',
  status TEXT NOT NULL DEFAULT 'Pending Approval'
    CHECK (status IN ('Pending Approval','Approved & Scheduled','Completed')),
  technician_name TEXT NOT NULL DEFAULT '',
  technician_contact TEXT NOT NULL DEFAULT '',
  scheduled_date TEXT NOT NULL DEFAULT '',
  scheduled_time TEXT NOT NULL DEFAULT '',
  last_service_date TEXT NOT NULL DEFAULT '',
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT
);
CREATE INDEX IF NOT EXISTS idx_services_user ON service_requests(user_id);
CREATE INDEX IF NOT EXISTS idx_services_status ON service_requests(status);

-- Inventory ledger
CREATE TABLE IF NOT EXISTS inventory_items(
  id TEXT PRIMARY KEY,
  item_name TEXT NOT NULL,
  category TEXT NOT NULL CHECK (category IN ('machines','materials')),
  description TEXT NOT NULL DEFAULT '',
  quantity INTEGER NOT NULL DEFAULT 0 CHECK (quantity >= 0),
  unit TEXT NOT NULL DEFAULT 'pieces',
  min_stock_level INTEGER NOT NULL DEFAULT 10,
  price NUMERIC NOT NULL DEFAULT 0,
  supplier TEXT NOT NULL DEFAULT '',
  location TEXT NOT NULL DEFAULT '',
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT
);
CREATE INDEX IF NOT EXISTS idx_inventory_category ON inventory_items(category);
CREATE INDEX IF NOT EXISTS idx_inventory_name ON inventory_items(LOWER(item_name));

-- Blogs
CREATE TABLE IF NOT EXISTS blogs(
  id TEXT PRIMARY KEY,
  title TEXT NOT NULL,
  summary TEXT NOT NULL,
  image_url TEXT NOT NULL DEFAULT '',
  subtopic TEXT NOT NULL CHECK (subtopic IN
    ('ayurvedic','science','sustainability','case-studies','wellness','technology')),
  content TEXT NOT NULL,
  read_time TEXT NOT NULL DEFAULT '5 min read',
  published INTEGER NOT NULL DEFAULT 1,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_blogs_title_nocase ON blogs(LOWER(title));
CREATE INDEX IF NOT EXISTS idx_blogs_subtopic ON blogs(subtopic);
CREATE INDEX IF NOT EXISTS idx_blogs_created_at ON blogs(created_at);

-- Catalog products (marketing catalog, distinct from registered units)
CREATE TABLE IF NOT EXISTS catalog_products(
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  description TEXT NOT NULL,
  price NUMERIC NOT NULL CHECK (price >= 0),
  category TEXT NOT NULL CHECK (category IN ('B2C','B2B')),
  image_url TEXT NOT NULL DEFAULT '',
  features_json TEXT NOT NULL DEFAULT '[]',
  specs_json TEXT NOT NULL DEFAULT '{}',
  brochure_url TEXT NOT NULL DEFAULT '',
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT
);
CREATE INDEX IF NOT EXISTS idx_catalog_category ON catalog_products(category);
`
	_, err := db.Exec(schema)
	return err
}

// seedUsers ensures a demo customer and one admin exist (idempotent).
func seedUsers(db *sqlx.DB) error {
	type u struct {
		ID, Name, Email, Role, Hash string
	}
	mk := func(id, name, email, role, raw string) u {
		h, _ := bcrypt.GenerateFromPassword([]byte(raw), 12)
		return u{ID: id, Name: name, Email: email, Role: role, Hash: string(h)}
	}

	users := []u{
		mk("u-admin", "Admin", "admin@zosswater.test", "admin", "Adm1nPass!"),
		mk("u-ravi", "Ravi", "ravi@zosswater.test", "user", "Passw0rd!"),
		mk("u-meera", "Meera", "meera@zosswater.test", "user", "Passw0rd!"),
	}

	tx := db.MustBegin()
	defer func() { _ = tx.Rollback() }()

	for _, x := range users {
		if _, err := tx.Exec(`
			INSERT INTO users(id,name,email,provider,password_hash,role)
			VALUES(?,?,?,'local',?,?)
			ON CONFLICT(email) DO NOTHING
		`, x.ID, x.Name, x.Email, x.Hash, x.Role); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// seedTemplates inserts coverage templates for the shipping models.
func seedTemplates(db *sqlx.DB) error {
	tx := db.MustBegin()
	defer func() { _ = tx.Rollback() }()

	rows := []struct {
		id, model, name, desc string
		warranty, amc, freq   int
	}{
		{"tpl-zi-5000", "ZI-5000", "Zoss Ionizer 5000", "5-plate countertop ionizer", 12, 12, 90},
		{"tpl-zi-7000", "ZI-7000", "Zoss Ionizer 7000 Pro", "7-plate under-counter ionizer", 24, 12, 60},
		{"tpl-zi-9000", "ZI-9000", "Zoss Ionizer 9000 Max", "9-plate commercial ionizer", 36, 24, 45},
	}
	for _, t := range rows {
		if _, err := tx.Exec(`
			INSERT INTO product_templates(id,model_number,name,description,warranty_months,amc_months,service_frequency_days)
			SELECT ?,?,?,?,?,?,?
			WHERE NOT EXISTS (SELECT 1 FROM product_templates WHERE LOWER(model_number)=LOWER(?))
		`, t.id, t.model, t.name, t.desc, t.warranty, t.amc, t.freq, t.model); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// seedContent inserts starter catalog products, blogs and inventory
// if the respective tables are empty.
func seedContent(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM catalog_products`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("[seed] inserting demo catalog/blogs/inventory")

	tx := db.MustBegin()
	defer func() { _ = tx.Rollback() }()

	tx.MustExec(`INSERT INTO catalog_products(id,name,description,price,category,image_url,features_json,specs_json,brochure_url) VALUES
	  ('cat-zi-5000','Zoss Ionizer 5000','Countertop alkaline water ionizer for homes.',49999,'B2C','/uploads/zi-5000.png',
	   '["5 titanium plates","pH 4.5-10.0","Self-cleaning"]','{"plates":"5","power":"230V"}','/brochures/zi-5000.pdf'),
	  ('cat-zi-9000','Zoss Ionizer 9000 Max','High-throughput ionizer for offices and clinics.',189999,'B2B','/uploads/zi-9000.png',
	   '["9 titanium plates","Continuous duty","Flow sensor"]','{"plates":"9","power":"230V"}','/brochures/zi-9000.pdf')`)

	tx.MustExec(`INSERT INTO blogs(id,title,summary,image_url,subtopic,content,read_time,published) VALUES
	  ('blog-alkaline-101','Alkaline Water 101','What ionized alkaline water is and how electrolysis produces it.',
	   '/uploads/blog-placeholder.png','science',
	   'Electrolysis splits ordinary tap water across charged titanium plates, concentrating minerals on the cathode side and producing water with an elevated pH. This article walks through the chemistry, the role of ORP, and what the plate count of an ionizer actually changes in practice for a household.',
	   '5 min read',1),
	  ('blog-amc-guide','Why an AMC Matters','How an annual maintenance contract keeps an ionizer performing.',
	   '/uploads/blog-placeholder.png','wellness',
	   'An ionizer is a daily-use appliance with consumable filters and plates that scale over time. An annual maintenance contract schedules periodic descaling and filter swaps before performance degrades, which is considerably cheaper than reactive repairs. Here is what a typical service visit covers and how often one is needed.',
	   '4 min read',1)`)

	tx.MustExec(`INSERT INTO inventory_items(id,item_name,category,description,quantity,unit,min_stock_level,price,supplier,location) VALUES
	  ('inv-zi-5000','Zoss Ionizer 5000','machines','Boxed retail units',12,'pieces',5,49999,'Zoss Mfg','Warehouse A'),
	  ('inv-filter-ct','Carbon Filter Cartridge','materials','Stage-1 replacement filter',40,'pieces',25,1499,'AquaParts','Warehouse A'),
	  ('inv-descaler','Citric Descaler','materials','Descaling solution for service visits',8,'liters',10,299,'AquaParts','Warehouse B')`)

	return tx.Commit()
}
