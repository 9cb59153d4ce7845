package dao

import "fmt"

// Transaction runs fn inside one database transaction. fn gets a DaoMethod
// bound to the transaction; a returned error or a panic rolls everything back.
func (d *dao) Transaction(fn func(tx DaoMethod) error) (err error) {
	tx := d.db.Begin()
	if tx.Error != nil {
		return fmt.Errorf("%w: %v", ErrBeginTx, tx.Error)
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(&dao{db: tx}); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			return fmt.Errorf("%w (rollback failed: %v)", err, rbErr)
		}
		return err
	}

	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}
