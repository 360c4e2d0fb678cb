package cache

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/fsdevblog/groph-cart/internal/domain"
	"github.com/go-redis/redis/v8"
	json "github.com/goccy/go-json"
)

const (
	useCreditOn  = "1"
	useCreditOff = "0"
)

// Скрипты записи баланса не заменяют снимок с большим last_entry_id более старым.
// KEYS[1] - ключ баланса, ARGV[1] - снимок, ARGV[2] - last_entry_id снимка, ARGV[3] - ttl в миллисекундах.
// Возвращают 1, если снимок записан, и 0, если нет.
var (
	setCreditScript = redis.NewScript(`
local current = redis.call('GET', KEYS[1])
if current and (cjson.decode(current).last_entry_id or 0) > tonumber(ARGV[2]) then
	return 0
end
if tonumber(ARGV[3]) > 0 then
	redis.call('SET', KEYS[1], ARGV[1], 'PX', ARGV[3])
else
	redis.call('SET', KEYS[1], ARGV[1])
end
return 1
`)
	refreshCreditScript = redis.NewScript(`
local current = redis.call('GET', KEYS[1])
if not current or (cjson.decode(current).last_entry_id or 0) > tonumber(ARGV[2]) then
	return 0
end
if tonumber(ARGV[3]) > 0 then
	redis.call('SET', KEYS[1], ARGV[1], 'PX', ARGV[3])
else
	redis.call('SET', KEYS[1], ARGV[1])
end
return 1
`)
)

// RedisStore хранит данные корзины в redis. Все ключи живут ttl с момента последней записи.
type RedisStore struct {
	rdb redis.Cmdable
	ttl time.Duration
}

func NewRedisStore(rdb redis.Cmdable, ttl time.Duration) *RedisStore {
	return &RedisStore{rdb: rdb, ttl: ttl}
}

// Connect создает клиент redis и проверяет соединение.
func Connect(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping %s: %s", addr, err.Error())
	}
	return rdb, nil
}

// Get возвращает закешированный баланс или nil, если записи нет.
func (r *RedisStore) Get(ctx context.Context, userID int64) (*domain.BalanceSnapshot, error) {
	raw, err := r.rdb.Get(ctx, creditKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil //nolint:nilnil
		}
		return nil, fmt.Errorf("[cache] get credit of user %d: %w", userID, err)
	}
	var snapshot domain.BalanceSnapshot
	if unmarshalErr := json.Unmarshal(raw, &snapshot); unmarshalErr != nil {
		return nil, fmt.Errorf("[cache] decode credit of user %d: %w", userID, unmarshalErr)
	}
	return &snapshot, nil
}

// Set создает или перезаписывает закешированный баланс. Снимок старше закешированного игнорируется.
func (r *RedisStore) Set(ctx context.Context, snapshot domain.BalanceSnapshot) error {
	if _, err := r.writeCredit(ctx, setCreditScript, snapshot); err != nil {
		return fmt.Errorf("[cache] set credit of user %d: %w", snapshot.UserID, err)
	}
	return nil
}

// Refresh перезаписывает баланс только если ключ уже существует и закешированный снимок не новее.
// Возвращает true, если запись обновлена.
func (r *RedisStore) Refresh(ctx context.Context, snapshot domain.BalanceSnapshot) (bool, error) {
	ok, err := r.writeCredit(ctx, refreshCreditScript, snapshot)
	if err != nil {
		return false, fmt.Errorf("[cache] refresh credit of user %d: %w", snapshot.UserID, err)
	}
	return ok, nil
}

func (r *RedisStore) writeCredit(ctx context.Context, script *redis.Script, snapshot domain.BalanceSnapshot) (bool, error) {
	raw, err := json.Marshal(snapshot)
	if err != nil {
		return false, fmt.Errorf("encode: %w", err)
	}
	written, runErr := script.Run(
		ctx,
		r.rdb,
		[]string{creditKey(snapshot.UserID)},
		string(raw),
		snapshot.LastEntryID,
		r.ttl.Milliseconds(),
	).Int64()
	if runErr != nil {
		return false, runErr //nolint:wrapcheck
	}
	return written == 1, nil
}

// GetUseCredit возвращает сохраненный выбор юзера или nil, если выбор не сохранялся.
func (r *RedisStore) GetUseCredit(ctx context.Context, userID int64) (*bool, error) {
	val, err := r.rdb.Get(ctx, useCreditKey(userID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil //nolint:nilnil
		}
		return nil, fmt.Errorf("[cache] get usecredit of user %d: %w", userID, err)
	}
	useCredit := val == useCreditOn
	return &useCredit, nil
}

func (r *RedisStore) SaveUseCredit(ctx context.Context, userID int64, useCredit bool) error {
	val := useCreditOff
	if useCredit {
		val = useCreditOn
	}
	if err := r.rdb.Set(ctx, useCreditKey(userID), val, r.ttl).Err(); err != nil {
		return fmt.Errorf("[cache] save usecredit of user %d: %w", userID, err)
	}
	return nil
}

// Items возвращает позиции корзины юзера в порядке добавления.
func (r *RedisStore) Items(ctx context.Context, userID int64) ([]domain.CartItem, error) {
	raw, err := r.rdb.HGetAll(ctx, itemsKey(userID)).Result()
	if err != nil {
		return nil, fmt.Errorf("[cache] get cart items of user %d: %w", userID, err)
	}
	items := make([]domain.CartItem, 0, len(raw))
	for field, val := range raw {
		var item domain.CartItem
		if unmarshalErr := json.Unmarshal([]byte(val), &item); unmarshalErr != nil {
			return nil, fmt.Errorf("[cache] decode cart item %s of user %d: %w", field, userID, unmarshalErr)
		}
		items = append(items, item)
	}
	sortItems(items)
	return items, nil
}

// Put добавляет или заменяет позицию корзины.
func (r *RedisStore) Put(ctx context.Context, userID int64, item domain.CartItem) error {
	raw, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("[cache] encode cart item %s: %w", item.Key(), err)
	}
	key := itemsKey(userID)
	if setErr := r.rdb.HSet(ctx, key, item.Key(), string(raw)).Err(); setErr != nil {
		return fmt.Errorf("[cache] put cart item %s of user %d: %w", item.Key(), userID, setErr)
	}
	if expErr := r.rdb.Expire(ctx, key, r.ttl).Err(); expErr != nil {
		return fmt.Errorf("[cache] expire cart of user %d: %w", userID, expErr)
	}
	return nil
}

// Delete удаляет позицию корзины. Возвращает false, если позиции не было.
func (r *RedisStore) Delete(ctx context.Context, userID int64, itemKey string) (bool, error) {
	n, err := r.rdb.HDel(ctx, itemsKey(userID), itemKey).Result()
	if err != nil {
		return false, fmt.Errorf("[cache] delete cart item %s of user %d: %w", itemKey, userID, err)
	}
	return n > 0, nil
}

func (r *RedisStore) Clear(ctx context.Context, userID int64) error {
	if err := r.rdb.Del(ctx, itemsKey(userID)).Err(); err != nil {
		return fmt.Errorf("[cache] clear cart of user %d: %w", userID, err)
	}
	return nil
}

func sortItems(items []domain.CartItem) {
	sort.Slice(items, func(i, j int) bool {
		if items[i].AddedAt.Equal(items[j].AddedAt) {
			return items[i].Key() < items[j].Key()
		}
		return items[i].AddedAt.Before(items[j].AddedAt)
	})
}
