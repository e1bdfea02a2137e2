package query

import "errors"

// Validation and runtime errors, one sentinel per user-facing failure
// kind. The messages are printed verbatim, so they stay localized.
var (
	ErrFileNotFound = errors.New("название файла некорректно или файл не найден")
	ErrFilterSyntax = errors.New("формат ввода некорректен")
	ErrFilterField  = errors.New("параметр поиска некорректен")
	ErrSortField    = errors.New("параметр сортировки некорректен")
	ErrSortOrder    = errors.New("порядок сортировки задан некорректно")
	ErrRange        = errors.New("некорректные индексы")
	ErrColumns      = errors.New("параметры демонстрации некорректны")
	ErrEmptyFile    = errors.New("пустой файл")
	ErrEmptyDataset = errors.New("нет данных")
	ErrNoMatches    = errors.New("ничего не найдено")
)
