package lox

import "errors"

// ErrInvalidSize возвращается Chunk при неположительном размере пачки.
var ErrInvalidSize = errors.New("chunk size must be positive")

func MapErr[T any, R comparable](collection []T, iteratee func(item T) (R, error)) ([]R, error) {
	var err error

	result := make([]R, len(collection))

	for i, item := range collection {
		result[i], err = iteratee(item)
		if err != nil {
			return nil, err
		}
	}

	return result, nil
}

func Map[T, R any](collection []T, iteratee func(item T) R) []R {
	result := make([]R, len(collection))

	for i, item := range collection {
		result[i] = iteratee(item)
	}

	return result
}

// Chunk режет срез на последовательные пачки по size элементов, последняя
// может быть короче. Пустой вход даёт nil, а не одну пустую пачку.
// lo.Chunk здесь не подходит: на size <= 0 он паникует, а нам нужна ошибка.
func Chunk[T any](collection []T, size int) ([][]T, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}

	if len(collection) == 0 {
		return nil, nil
	}

	result := make([][]T, 0, (len(collection)+size-1)/size)

	for i := 0; i < len(collection); i += size {
		end := i + size
		if end > len(collection) {
			end = len(collection)
		}

		result = append(result, collection[i:end])
	}

	return result, nil
}
