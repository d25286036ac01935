package paint

// Role 描述被绘制的矩形在候选窗中的身份，决定贴边时保留哪些圆角。
type Role int

const (
	RoleBackground Role = iota
	RoleText
	RoleFirst
	RoleMiddle
	RoleLast
	RoleOnly
)

func (r Role) String() string {
	switch r {
	case RoleBackground:
		return "background"
	case RoleText:
		return "text"
	case RoleFirst:
		return "first"
	case RoleMiddle:
		return "middle"
	case RoleLast:
		return "last"
	case RoleOnly:
		return "only"
	default:
		return "unknown"
	}
}

// RoleFor 返回第 i 个候选（共 count 个）对应的角色。
func RoleFor(i, count int) Role {
	switch {
	case count <= 1:
		return RoleOnly
	case i == 0:
		return RoleFirst
	case i == count-1:
		return RoleLast
	default:
		return RoleMiddle
	}
}

type policyKey struct {
	vertical bool
	inline   bool
	role     Role
}

var (
	top    = Corners{TopLeft: true, TopRight: true}
	bottom = Corners{BottomRight: true, BottomLeft: true}
	left   = Corners{TopLeft: true, BottomLeft: true}
	right  = Corners{TopRight: true, BottomRight: true}
)

// cornerTable 给出矩形贴到背景边缘时应保留的圆角。
var cornerTable = map[policyKey]Corners{
	{true, false, RoleText}:   top,
	{true, false, RoleFirst}:  {},
	{true, false, RoleMiddle}: {},
	{true, false, RoleLast}:   bottom,
	{true, false, RoleOnly}:   bottom,

	{true, true, RoleText}:   AllCorners,
	{true, true, RoleFirst}:  top,
	{true, true, RoleMiddle}: {},
	{true, true, RoleLast}:   bottom,
	{true, true, RoleOnly}:   AllCorners,

	{false, false, RoleText}:   top,
	{false, false, RoleFirst}:  {BottomLeft: true},
	{false, false, RoleMiddle}: {},
	{false, false, RoleLast}:   {BottomRight: true},
	{false, false, RoleOnly}:   bottom,

	{false, true, RoleText}:   AllCorners,
	{false, true, RoleFirst}:  left,
	{false, true, RoleMiddle}: {},
	{false, true, RoleLast}:   right,
	{false, true, RoleOnly}:   AllCorners,
}

// CornerPolicy 查询在给定排布方式下，角色 role 贴边时应保留的圆角。
// 背景始终四角圆角。
func CornerPolicy(vertical, inline bool, role Role) Corners {
	if role == RoleBackground {
		return AllCorners
	}
	return cornerTable[policyKey{vertical, inline, role}]
}
