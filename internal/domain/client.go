package domain

// Client a salon visitor
type Client struct {
	name string
	age  int
}

func NewClient(name string, age int) (*Client, error) {
	c := &Client{}
	if err := c.SetName(name); err != nil {
		return nil, err
	}
	if err := c.SetAge(age); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Client) Name() string { return c.name }
func (c *Client) Age() int     { return c.age }

func (c *Client) SetName(name string) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	c.name = name
	return nil
}

func (c *Client) SetAge(age int) error {
	if err := ValidateAge(age); err != nil {
		return err
	}
	c.age = age
	return nil
}
