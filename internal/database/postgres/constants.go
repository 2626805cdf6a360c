package postgres

// Garden queries
const (
	queryGetGarden = `SELECT snapshot FROM gardens WHERE username = $1`

	queryUpsertGarden = `
INSERT INTO gardens (username, snapshot, version, level, plant_count)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (username) DO UPDATE SET
    snapshot = EXCLUDED.snapshot,
    version = EXCLUDED.version,
    level = EXCLUDED.level,
    plant_count = EXCLUDED.plant_count,
    updated_at = NOW()`

	queryDeleteGarden = `DELETE FROM gardens WHERE username = $1`

	queryListGardens = `SELECT username, snapshot FROM gardens ORDER BY username`

	queryListUsernames = `SELECT username FROM gardens ORDER BY username`
)
