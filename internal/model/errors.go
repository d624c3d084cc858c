package model

import "errors"

// ErrInvalidArgument — malformed input: имя вне [2,50] символов, неизвестная
// национальность, пустой unit ID, SkillID вне закрытого набора навыков.
// Отклоняется до любой мутации состояния.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrNameServiceUnavailable — генератор имён не передан при случайной
// генерации офицера. Fatal precondition, конструирование прерывается.
var ErrNameServiceUnavailable = errors.New("name service unavailable")

// ErrSnapshotCorrupted — сохранённое состояние не прошло проверку digest.
var ErrSnapshotCorrupted = errors.New("officer snapshot corrupted")
