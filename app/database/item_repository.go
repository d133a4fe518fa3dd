package database

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/bbsimage/appfree/app/feed"
)

type itemRepository struct {
	db *DB
}

func NewItemRepository(db *DB) ItemRepository {
	return &itemRepository{db: db}
}

func (r *itemRepository) MarkSeen(item feed.Item, seenAt time.Time) (bool, error) {
	hash := contentHash(item)

	var id int64
	err := r.db.QueryRow(`SELECT id FROM seen_items WHERE content_hash = ? LIMIT 1`, hash).Scan(&id)
	if err == sql.ErrNoRows {
		_, err = r.db.Exec(`
			INSERT INTO seen_items (content_hash, title, app_link, tag, redeem_code, first_seen_at, last_seen_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, hash, item.Title, item.AppLink, string(item.Tag), item.RedeemCode, seenAt, seenAt)
		if err != nil {
			return false, fmt.Errorf("failed to insert seen item: %w", err)
		}
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check seen item: %w", err)
	}

	_, err = r.db.Exec(`
		UPDATE seen_items SET tag = ?, redeem_code = ?, last_seen_at = ? WHERE id = ?
	`, string(item.Tag), item.RedeemCode, seenAt, id)
	if err != nil {
		return false, fmt.Errorf("failed to update seen item: %w", err)
	}

	return false, nil
}

func (r *itemRepository) GetRecent(limit int) ([]SeenItem, error) {
	rows, err := r.db.Query(`
		SELECT id, content_hash, title, app_link, tag, redeem_code, first_seen_at, last_seen_at
		FROM seen_items
		ORDER BY last_seen_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent items: %w", err)
	}
	defer rows.Close()

	var items []SeenItem
	for rows.Next() {
		var item SeenItem
		err := rows.Scan(
			&item.ID, &item.ContentHash, &item.Title, &item.AppLink,
			&item.Tag, &item.RedeemCode, &item.FirstSeenAt, &item.LastSeenAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan seen item row: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating seen item rows: %w", err)
	}

	return items, nil
}

func (r *itemRepository) GetCount() (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM seen_items`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to get seen item count: %w", err)
	}

	return count, nil
}

func contentHash(item feed.Item) string {
	content := fmt.Sprintf("%s|%s", item.Title, item.AppLink)

	hash := sha256.Sum256([]byte(content))
	return hex.EncodeToString(hash[:])
}
