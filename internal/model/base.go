package model

// UserStatus 用户状态,只有正常状态可以登录
type UserStatus uint8

const (
	UserStatusDisabled UserStatus = iota
	UserStatusNormal
	UserStatusLocked
)

// RoleStatus 角色状态,停用的角色不提供任何权限
type RoleStatus uint8

const (
	RoleStatusNormal RoleStatus = iota
	RoleStatusDisabled
)

// PermissionType 权限类型
type PermissionType uint8

const (
	PermissionTypeDirectory PermissionType = iota
	PermissionTypeMenu
	PermissionTypeButton
)

type Gender uint8

const (
	GenderFemale Gender = iota
	GenderMale
)

// RootPermissionID 顶级权限的父id
const RootPermissionID uint64 = 0
